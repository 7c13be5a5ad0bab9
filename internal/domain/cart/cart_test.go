package cart

import "testing"

func TestAddLineAddSetSemantics(t *testing.T) {
	c := New("c1", "u1")

	c.AddLine("p1", 2)
	c.AddLine("p1", 2)
	if len(c.Lines) != 1 {
		t.Fatalf("identical {product, quantity} line duplicated: %d lines", len(c.Lines))
	}

	c.AddLine("p1", 3)
	if len(c.Lines) != 2 {
		t.Fatalf("same product with different quantity should append, got %d lines", len(c.Lines))
	}

	c.AddLine("p2", 1)
	if len(c.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(c.Lines))
	}
}

func TestRemoveProductDropsAllLines(t *testing.T) {
	c := New("c1", "u1")
	c.AddLine("p1", 1)
	c.AddLine("p1", 2)
	c.AddLine("p2", 1)

	c.RemoveProduct("p1")

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(c.Lines))
	}
	if c.Lines[0].ProductID != "p2" {
		t.Fatalf("wrong line survived: %+v", c.Lines[0])
	}
}

func TestEmptyZeroesTotal(t *testing.T) {
	c := New("c1", "u1")
	c.AddLine("p1", 1)

	c.Empty()

	if len(c.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(c.Lines))
	}
	if !c.TotalAmount.IsZero() {
		t.Fatalf("expected zero total, got %s", c.TotalAmount)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New("c1", "u1")
	c.AddLine("p1", 1)

	clone := c.Clone()
	clone.AddLine("p2", 1)

	if len(c.Lines) != 1 {
		t.Fatalf("mutating the clone changed the original: %d lines", len(c.Lines))
	}
}
