package htmlnode

import (
	"errors"
	"strings"
	"testing"
)

func TestParentRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "two paragraphs with class",
			node: MustParent("div", []Node{
				MustLeaf("p", Ptr("A"), nil),
				MustLeaf("p", Ptr("B"), nil),
			}, Props{Attr("class", "c")}),
			want: `<div class="c"><p>A</p><p>B</p></div>`,
		},
		{
			name: "nested",
			node: MustParent("div", []Node{
				MustLeaf("h1", Ptr("T"), nil),
				MustParent("section", []Node{
					MustLeaf("p", Ptr("S"), nil),
				}, nil),
			}, nil),
			want: `<div><h1>T</h1><section><p>S</p></section></div>`,
		},
		{
			name: "mixed text and elements",
			node: MustParent("p", []Node{
				Text("Hello, "),
				MustLeaf("b", Ptr("world"), nil),
				Text("!"),
			}, nil),
			want: `<p>Hello, <b>world</b>!</p>`,
		},
		{
			name: "void child",
			node: MustParent("figure", []Node{
				MustLeaf("img", nil, Props{Attr("src", "t.png")}),
				MustLeaf("figcaption", Ptr("Cap"), nil),
			}, nil),
			want: `<figure><img src="t.png"><figcaption>Cap</figcaption></figure>`,
		},
		{
			name: "page with section",
			node: MustParent("div", []Node{
				MustLeaf("h1", Ptr("Title"), nil),
				MustParent("section", []Node{
					MustLeaf("p", Ptr("Section content"), nil),
					MustLeaf("a", Ptr("Learn more"), Props{Attr("href", "#")}),
				}, nil),
			}, nil),
			want: `<div><h1>Title</h1><section><p>Section content</p><a href="#">Learn more</a></section></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Render()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParentRenderIsConcatenationOfChildren(t *testing.T) {
	children := []Node{
		MustLeaf("li", Ptr("one"), Props{Attr("id", "1")}),
		Text("between"),
		MustLeaf("li", nil, nil),
		MustParent("li", []Node{MustLeaf("em", Ptr("two"), nil)}, nil),
	}
	parent := MustParent("ul", children, Props{Attr("class", "list")})

	got, err := parent.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want strings.Builder
	for _, child := range children {
		s, err := child.Render()
		if err != nil {
			t.Fatalf("child render: %v", err)
		}
		want.WriteString(s)
	}

	if !strings.HasPrefix(got, "<ul") {
		t.Errorf("output should start with <ul, got %q", got)
	}
	if !strings.HasSuffix(got, "</ul>") {
		t.Errorf("output should end with </ul>, got %q", got)
	}
	inner := got[strings.Index(got, ">")+1 : len(got)-len("</ul>")]
	if inner != want.String() {
		t.Errorf("inner = %q, want %q", inner, want.String())
	}
}

func TestNewParentValidation(t *testing.T) {
	child := Text("x")

	tests := []struct {
		name     string
		tag      string
		children []Node
		want     error
	}{
		{name: "empty tag", tag: "", children: []Node{child}, want: ErrMissingTag},
		{name: "nil children", tag: "div", children: nil, want: ErrMissingChildren},
		{name: "empty children", tag: "div", children: []Node{}, want: ErrMissingChildren},
		{name: "nil child", tag: "div", children: []Node{child, nil}, want: ErrMissingChildren},
		{name: "nil leaf pointer", tag: "div", children: []Node{(*Leaf)(nil)}, want: ErrMissingChildren},
		{name: "nil parent pointer", tag: "div", children: []Node{child, (*Parent)(nil)}, want: ErrMissingChildren},
		{name: "nil base pointer", tag: "div", children: []Node{(*Base)(nil)}, want: ErrMissingChildren},
		{name: "tag checked first", tag: "", children: nil, want: ErrMissingTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParent(tt.tag, tt.children, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Errorf("expected nil parent, got %v", p)
			}
		})
	}
}

func TestParentPropagatesChildError(t *testing.T) {
	base := NewBase("span", Ptr("x"), nil, nil)
	parent := MustParent("div", []Node{Text("ok"), base}, nil)

	out, err := parent.Render()
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on error, got %q", out)
	}

	var zero Leaf
	deep := MustParent("div", []Node{MustParent("section", []Node{&zero}, nil)}, nil)
	if _, err := deep.Render(); !errors.Is(err, ErrMissingContent) {
		t.Errorf("expected ErrMissingContent from nested child, got %v", err)
	}
}

func TestMustParentPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingChildren) {
			t.Errorf("panic value = %v, want ErrMissingChildren", r)
		}
	}()
	MustParent("div", nil, nil)
}

func TestParentAccessors(t *testing.T) {
	children := []Node{Text("a"), Text("b")}
	p := MustParent("div", children, Props{Attr("id", "x")})

	if p.Tag() != "div" {
		t.Errorf("Tag() = %q, want %q", p.Tag(), "div")
	}
	if _, ok := p.Value(); ok {
		t.Error("parent should never report a value")
	}
	if got := len(p.Children()); got != 2 {
		t.Errorf("len(Children()) = %d, want 2", got)
	}
}
