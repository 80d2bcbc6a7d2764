package chinese

import "testing"

func TestLingPlaceholder(t *testing.T) {
	ctx := DefaultContext()

	kept := LingPlaceholder(Literal("二九零四")).ToChinese(ctx)
	if kept.Text != "二九零四" || kept.Omissible {
		t.Fatalf("non-omissible source = %q, omissible %v", kept.Text, kept.Omissible)
	}

	replaced := LingPlaceholder(Literal("")).ToChinese(ctx)
	if replaced.Text != "零" || !replaced.Omissible {
		t.Fatalf("omissible source = %q, omissible %v", replaced.Text, replaced.Omissible)
	}
}

func TestEmptyPlaceholder(t *testing.T) {
	ctx := DefaultContext()

	kept := EmptyPlaceholder(Integer(7)).ToChinese(ctx)
	if kept.Text != "七" || kept.Omissible {
		t.Fatalf("non-omissible source = %q, omissible %v", kept.Text, kept.Omissible)
	}

	replaced := EmptyPlaceholder(Integer(0)).ToChinese(ctx)
	if replaced.Text != "" || !replaced.Omissible {
		t.Fatalf("omissible source = %q, omissible %v", replaced.Text, replaced.Omissible)
	}
}
