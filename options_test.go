package signpad

import (
	"testing"
)

func TestOptions_ApplyInOrder(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Style
	}{
		{
			name: "defaults",
			want: DefaultStyle(),
		},
		{
			name: "color and width",
			opts: []Option{WithStrokeColor(Black), WithStrokeWidth(5)},
			want: Style{StrokeColor: Black, StrokeWidth: 5, TransparentBackground: true},
		},
		{
			name: "field option after WithStyle",
			opts: []Option{
				WithStyle(Style{StrokeColor: White, StrokeWidth: 1}),
				WithStrokeColor(Black),
			},
			want: Style{StrokeColor: Black, StrokeWidth: 1},
		},
		{
			name: "WithStyle replaces earlier fields",
			opts: []Option{
				WithStrokeWidth(9),
				WithTransparentBackground(false),
				WithStyle(DefaultStyle()),
			},
			want: DefaultStyle(),
		},
		{
			name: "negative width",
			opts: []Option{WithStrokeWidth(-3)},
			want: Style{StrokeColor: SystemRed, StrokeWidth: 0, TransparentBackground: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(50, 50, tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := p.Style(); got != tt.want {
				t.Errorf("Style() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithTitles(t *testing.T) {
	p := MustNew(50, 50, WithTitles("Again", "Done"))
	if r, c := p.Titles(); r != "Again" || c != "Done" {
		t.Errorf("Titles() = %q, %q, want Again, Done", r, c)
	}
}

func TestWithDisplayScale(t *testing.T) {
	p := MustNew(50, 40, WithDisplayScale(3))
	if got := p.DisplayScale(); got != 3 {
		t.Errorf("DisplayScale() = %v, want 3", got)
	}
	if b := p.Redraw().Bounds(); b.Dx() != 150 || b.Dy() != 120 {
		t.Errorf("surface = %v, want 150x120", b)
	}
}

func TestWithRedrawRequester(t *testing.T) {
	m := &mockRequester{}
	p := MustNew(50, 50, WithRedrawRequester(m))
	p.Clear()
	if m.requests != 1 {
		t.Errorf("requests = %d, want 1", m.requests)
	}
}
