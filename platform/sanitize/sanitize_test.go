package sanitize

import "testing"

func TestStripHTMLRemovesEncodedTags(t *testing.T) {
	if got := StripHTML("<b>Bright</b> &lt;script&gt;x&lt;/script&gt; home"); got != "Bright x home" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestTextCollapsesInlineWhitespace(t *testing.T) {
	if got := Text("  Three   bed\t house\nwith garden "); got != "Three bed house\nwith garden" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestLinesDropsEmpty(t *testing.T) {
	got := Lines([]string{"<li>Garden</li>", "  ", "<br>", "Parking"})
	if len(got) != 2 || got[0] != "Garden" || got[1] != "Parking" {
		t.Fatalf("unexpected lines %v", got)
	}
}
