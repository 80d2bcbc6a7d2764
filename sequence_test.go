package chinese

import "testing"

func TestSequenceCollect(t *testing.T) {
	ctx := DefaultContext()

	seq := Seq(ctx, Integer(9), Literal("点"), Integer(4), Literal("分"))
	got := seq.Collect()
	if got.Text != "九点四分" {
		t.Fatalf("collect = %q", got.Text)
	}
	if got.Omissible {
		t.Fatal("nonzero sequence should not be omissible")
	}
}

func TestSequenceCollectEmpty(t *testing.T) {
	var seq Sequence
	got := seq.Collect()
	if got.Text != "" || !got.Omissible {
		t.Fatalf("empty sequence = %q, omissible %v", got.Text, got.Omissible)
	}
}

func TestSequenceCollectAllOmissible(t *testing.T) {
	ctx := DefaultContext()
	seq := Seq(ctx, Integer(0), Count(0), Literal(""))
	got := seq.Collect()
	if got.Text != "零零" {
		t.Fatalf("collect = %q", got.Text)
	}
	if !got.Omissible {
		t.Fatal("all-omissible sequence should stay omissible")
	}
}

func TestSequenceFlatteningHomomorphism(t *testing.T) {
	ctx := DefaultContext()
	a := Seq(ctx, Integer(8), Literal("好"))
	b := Seq(ctx, Literal("分之"), Integer(5))

	if got, want := a.Concat(b).Text(), a.Text()+b.Text(); got != want {
		t.Fatalf("concat text = %q, want %q", got, want)
	}
}

func TestSequencePushPreservesOrder(t *testing.T) {
	var seq Sequence
	seq.Push(Chinese{Text: "很"})
	seq.Push(Chinese{Text: "好"})

	if seq.Len() != 2 {
		t.Fatalf("len = %d", seq.Len())
	}
	if got := seq.Text(); got != "很好" {
		t.Fatalf("text = %q", got)
	}
}

func TestSequenceTrimEnd(t *testing.T) {
	ctx := DefaultContext()
	seq := Seq(ctx, Integer(8), Literal(""), Literal("好"), Literal(""), Integer(0), Count(0))
	got := seq.TrimEnd().Collect()
	if got.Text != "八好" {
		t.Fatalf("trimmed = %q", got.Text)
	}
	if got.Omissible {
		t.Fatal("trimmed sequence should not be omissible")
	}
}

func TestSequenceTrimStart(t *testing.T) {
	ctx := DefaultContext()
	seq := Seq(ctx, Integer(0), Literal(""), Integer(7))
	if got := seq.TrimStart().Text(); got != "七" {
		t.Fatalf("trimmed = %q", got)
	}
}

func TestSequenceItemsAreStructural(t *testing.T) {
	ctx := DefaultContext()
	seq := Seq(ctx, Literal("你好"), Literal("生日快乐"))

	items := seq.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	if items[0] != (Chinese{Text: "你好"}) {
		t.Fatalf("first item = %+v", items[0])
	}
	if items[1] != (Chinese{Text: "生日快乐"}) {
		t.Fatalf("second item = %+v", items[1])
	}
}

func TestSequenceNilItemIsOmissible(t *testing.T) {
	ctx := DefaultContext()
	seq := Seq(ctx, nil, Integer(3))
	if got := seq.Text(); got != "三" {
		t.Fatalf("text = %q", got)
	}
	if !seq.Items()[0].Omissible {
		t.Fatal("nil item should render omissible")
	}
}
