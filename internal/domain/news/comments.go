package news

type pendingComment struct {
	node  *CommentNode
	level int
}

// WalkComments visits every comment in pre-order: a node, then all of its
// replies, then its next sibling. Roots are visited at their own Level and
// each reply one level below its parent.
//
// The walk keeps an explicit stack, so thread depth is bounded only by memory.
func WalkComments(roots []CommentNode, visit func(node CommentNode, level int)) {
	stack := make([]pendingComment, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, pendingComment{node: &roots[i], level: roots[i].Level})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(*top.node, top.level)

		children := top.node.Comments
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pendingComment{node: &children[i], level: top.level + 1})
		}
	}
}

// CountComments returns the number of nodes in the forest.
func CountComments(roots []CommentNode) int {
	count := 0
	WalkComments(roots, func(CommentNode, int) { count++ })
	return count
}
