// Package settings defines application-level configuration data.
package settings

import "time"

// Fetch disciplines for the reading service.
const (
	FetchSync  = "sync"
	FetchAsync = "async"
)

// Feed sources.
const (
	SourceJSON = "json"
	SourceRSS  = "rss"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Scroll up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Scroll down key',default='j,down'"`
	UpPage   string `yaml:"up_page" kong:"help='Scroll page up key',default='ctrl+u,pgup'"`
	DownPage string `yaml:"down_page" kong:"help='Scroll page down key',default='ctrl+d,pgdown'"`
	PrevPage string `yaml:"prev_page" kong:"help='Previous feed page key',default='p,left'"`
	NextPage string `yaml:"next_page" kong:"help='Next feed page key',default='n,right'"`
	Open     string `yaml:"open" kong:"help='Open story URL in browser key',default='o'"`
	Back     string `yaml:"back" kong:"help='Back to feed key',default='esc,h'"`
	Goto     string `yaml:"goto" kong:"help='Go to location key',default=':'"`
	Refresh  string `yaml:"refresh" kong:"help='Refresh feed key',default='r'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Title    string `yaml:"title" kong:"help='Story title color',default='252'"`
	Read     string `yaml:"read" kong:"help='Read story color',default='240'"`
	Meta     string `yaml:"meta" kong:"help='Metadata color',default='244'"`
	Accent   string `yaml:"accent" kong:"help='Accent color',default='208'"`
	Disabled string `yaml:"disabled" kong:"help='Disabled link color',default='237'"`
}

// APIConfig defines where and how news data is fetched.
type APIConfig struct {
	FeedURL        string `yaml:"feed_url" kong:"help='Feed list endpoint',default='https://api.hnpwa.com/v0/news/1.json'"`
	ItemURL        string `yaml:"item_url" kong:"help='Item endpoint, @id is replaced by the item id',default='https://api.hnpwa.com/v0/item/@id.json'"`
	Source         string `yaml:"source" kong:"help='Feed source (json/rss)',default='json'"`
	RSSURL         string `yaml:"rss_url" kong:"help='RSS feed URL used when source is rss',default='https://hnrss.org/frontpage'"`
	FetchMode      string `yaml:"fetch_mode" kong:"help='Fetch discipline (sync/async)',default='async'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='HTTP timeout in seconds',default='10'"`
}

// ReaderConfig defines presentation constants.
type ReaderConfig struct {
	PageSize      int    `yaml:"page_size" kong:"help='Stories per page',default='10'"`
	CommentIndent int    `yaml:"comment_indent" kong:"help='Columns of indentation per comment level',default='4'"`
	ContentStyle  string `yaml:"content_style" kong:"help='Story content style (dark/light/notty/ascii)',default='dark'"`
}

// LogConfig defines logging output.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	API         APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	Reader      ReaderConfig `yaml:"reader" kong:"embed,prefix='reader.'"`
	KeyMap      KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log         LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
	HistoryFile string       `yaml:"history_file" kong:"help='Visit history database path'"`
}

// Timeout returns the HTTP timeout, defaulting to 10 seconds.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Async reports whether fetches complete on a later event-loop turn.
func (a APIConfig) Async() bool {
	return a.FetchMode != FetchSync
}
