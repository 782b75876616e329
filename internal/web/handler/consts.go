package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// PlaceholderImage substitutes an empty or unusable image reference.
	PlaceholderImage = "https://picsum.photos/seed/placeholder/800/600"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg, db or client is nil"
)
