package signpad

// Option configures a Pad during creation.
//
// Example:
//
//	// Default pad: red ink, width 2, transparent export
//	pad, err := signpad.New(320, 240)
//
//	// Retina surface with black ink
//	pad, err := signpad.New(320, 240,
//	    signpad.WithDisplayScale(2),
//	    signpad.WithStrokeColor(signpad.Black),
//	)
type Option func(*options)

// RedrawRequester is notified when the visible surface changed and should be
// repainted. gpucontext.WindowProvider satisfies it.
type RedrawRequester interface {
	RequestRedraw()
}

// options holds optional configuration for Pad creation.
type options struct {
	scale        float64
	style        Style
	rewriteTitle string
	confirmTitle string
	requester    RedrawRequester
}

// defaultOptions returns the default pad options.
func defaultOptions() options {
	return options{
		scale:        1,
		style:        DefaultStyle(),
		rewriteTitle: DefaultRewriteTitle,
		confirmTitle: DefaultConfirmTitle,
	}
}

// WithDisplayScale sets the device pixels per logical point of the visible
// surface. It is also the scale Confirm exports at.
func WithDisplayScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithStrokeColor sets the ink color.
func WithStrokeColor(c RGBA) Option {
	return func(o *options) {
		o.style.StrokeColor = c
	}
}

// WithStrokeWidth sets the line width in logical points.
// Negative widths are treated as 0.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		o.style.StrokeWidth = w
	}
}

// WithTransparentBackground selects a transparent (true) or opaque white
// (false) export background.
func WithTransparentBackground(transparent bool) Option {
	return func(o *options) {
		o.style.TransparentBackground = transparent
	}
}

// WithTitles sets the rewrite and confirm button labels.
func WithTitles(rewrite, confirm string) Option {
	return func(o *options) {
		o.rewriteTitle = rewrite
		o.confirmTitle = confirm
	}
}

// WithRedrawRequester sets the host notified after every visible change.
func WithRedrawRequester(r RedrawRequester) Option {
	return func(o *options) {
		o.requester = r
	}
}
