package layout

import (
	"reflect"
	"testing"

	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
)

func frag(text string, x, y float64, page int) pdftext.Fragment {
	return pdftext.Fragment{Text: text, X: x, Y: y, FontSize: 10, Page: page}
}

func TestBuildLinesEmpty(t *testing.T) {
	if got := BuildLines(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestBuildLinesMergesSameBaseline(t *testing.T) {
	in := []pdftext.Fragment{
		frag("World", 60, 700, 1),
		frag("Hello", 20, 701, 1),
		frag("Below", 20, 650, 1),
	}
	got := BuildLines(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(got), got)
	}
	if got[0].Text != "Hello World" {
		t.Errorf("line 0 text = %q", got[0].Text)
	}
	if got[0].X != 20 {
		t.Errorf("line 0 x = %v, want 20", got[0].X)
	}
	if got[1].Text != "Below" {
		t.Errorf("line 1 text = %q", got[1].Text)
	}
}

func TestBuildLinesTopOfPageFirst(t *testing.T) {
	in := []pdftext.Fragment{
		frag("bottom", 20, 100, 1),
		frag("top", 20, 700, 1),
	}
	got := BuildLines(in)
	want := []string{"top", "bottom"}
	var texts []string
	for _, l := range got {
		texts = append(texts, l.Text)
	}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("order = %v, want %v", texts, want)
	}
}

func TestBuildLinesPageBoundary(t *testing.T) {
	in := []pdftext.Fragment{
		frag("p2", 20, 700, 2),
		frag("p1", 20, 700, 1),
	}
	got := BuildLines(in)
	if len(got) != 2 || got[0].Text != "p1" || got[1].Text != "p2" {
		t.Fatalf("unexpected lines: %+v", got)
	}
}

func TestBuildLinesSkipsBlankFragments(t *testing.T) {
	in := []pdftext.Fragment{
		frag("  ", 10, 700, 1),
		frag("text", 20, 700, 1),
	}
	got := BuildLines(in)
	if len(got) != 1 || got[0].Text != "text" || got[0].X != 20 {
		t.Fatalf("unexpected lines: %+v", got)
	}
}

func TestBuildLinesBoldAndFontSize(t *testing.T) {
	in := []pdftext.Fragment{
		{Text: "Big", X: 10, Y: 700, FontSize: 16, Bold: false, Page: 1},
		{Text: "Name", X: 40, Y: 700, FontSize: 12, Bold: true, Page: 1},
	}
	got := BuildLines(in)
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got))
	}
	if !got[0].Bold || got[0].FontSize != 16 {
		t.Errorf("bold=%v fontSize=%v, want bold=true fontSize=16", got[0].Bold, got[0].FontSize)
	}
}
