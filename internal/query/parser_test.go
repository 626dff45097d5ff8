package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParser_SingleQuery(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("TR1\t4\n"))

	q, err := p.Next()
	if err != nil {
		t.Fatalf("Failed to read query: %v", err)
	}
	if q == nil {
		t.Fatal("Expected a query, got nil")
	}

	if q.Name != "TR1" {
		t.Errorf("Expected name TR1, got %s", q.Name)
	}
	if q.Pos != 4 {
		t.Errorf("Expected position 4, got %d", q.Pos)
	}
	if len(q.Fields) != 2 || q.Fields[0] != "TR1" || q.Fields[1] != "4" {
		t.Errorf("Expected original fields to be echoed, got %v", q.Fields)
	}

	// No more queries
	q2, err := p.Next()
	if err != nil {
		t.Fatalf("Error checking for more queries: %v", err)
	}
	if q2 != nil {
		t.Error("Expected no more queries")
	}
}

func TestParser_MultipleQueries(t *testing.T) {
	input := "TR1\t4\nTR2\t0\nTR1\t13\n"
	p := NewParserFromReader(strings.NewReader(input))

	count := 0
	for {
		q, err := p.Next()
		if err != nil {
			t.Fatalf("Error reading query: %v", err)
		}
		if q == nil {
			break
		}
		count++
	}

	if count != 3 {
		t.Errorf("Expected 3 queries, got %d", count)
	}
}

func TestParser_NoTrailingNewline(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("TR1\t4"))

	q, err := p.Next()
	if err != nil {
		t.Fatalf("Failed to read query: %v", err)
	}
	if q == nil || q.Pos != 4 {
		t.Fatalf("Expected query with position 4, got %+v", q)
	}
}

func TestParser_MalformedRow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one column", "TR1\n"},
		{"three columns", "TR1\t4\textra\n"},
		{"blank line", "\nTR1\t4\n"},
		{"space separated", "TR1 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParserFromReader(strings.NewReader(tt.input))
			_, err := p.Next()
			if !errors.Is(err, ErrMalformedRow) {
				t.Errorf("Expected ErrMalformedRow, got %v", err)
			}
		})
	}
}

func TestParser_InvalidPosition(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-integer", "TR1\tabc\n"},
		{"float", "TR1\t4.5\n"},
		{"negative", "TR1\t-1\n"},
		{"empty", "TR1\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParserFromReader(strings.NewReader(tt.input))
			_, err := p.Next()
			if !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("Expected ErrInvalidPosition, got %v", err)
			}
		})
	}
}

func TestParser_ErrorIncludesLineNumber(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("TR1\t4\nTR2\tbad\n"))

	if _, err := p.Next(); err != nil {
		t.Fatalf("Unexpected error on first row: %v", err)
	}

	_, err := p.Next()
	if err == nil {
		t.Fatal("Expected error on second row")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected line number in error, got %q", err.Error())
	}
}
