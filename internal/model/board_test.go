package model

import (
	"errors"
	"strings"
	"testing"
)

// boardFrom builds a board from square tokens, e.g. {"a8": {King, White}}.
func boardFrom(t *testing.T, pieces map[string]Piece) BoardState {
	t.Helper()
	var board BoardState
	for token, piece := range pieces {
		pos, err := ParseSquare(token)
		if err != nil {
			t.Fatalf("fixture square %q: %v", token, err)
		}
		p := piece
		board.Set(pos, &p)
	}
	return board
}

func mustSquare(t *testing.T, token string) Position {
	t.Helper()
	pos, err := ParseSquare(token)
	if err != nil {
		t.Fatalf("parse %q: %v", token, err)
	}
	return pos
}

func TestSquareRoundTrip(t *testing.T) {
	for file := 'a'; file < 'a'+Size; file++ {
		for rank := '0'; rank < '0'+Size; rank++ {
			token := string([]rune{file, rank})
			pos, err := ParseSquare(token)
			if err != nil {
				t.Fatalf("parse %q: %v", token, err)
			}
			if got := pos.Notation(); got != token {
				t.Fatalf("round trip %q -> %+v -> %q", token, pos, got)
			}
		}
	}
}

func TestParseSquareMapping(t *testing.T) {
	tests := []struct {
		token string
		want  Position
	}{
		{"a8", Position{Row: 0, Col: 0}},
		{"a0", Position{Row: 8, Col: 0}},
		{"i8", Position{Row: 0, Col: 8}},
		{"e7", Position{Row: 1, Col: 4}},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.token)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.token, err)
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestParseSquareRejectsMalformed(t *testing.T) {
	for _, token := range []string{"", "a", "a10", "j1", "a9", "1a", "A1", "e-", "ee"} {
		if _, err := ParseSquare(token); !errors.Is(err, ErrBadSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrBadSquare", token, err)
		}
	}
}

func TestStandardLayoutRender(t *testing.T) {
	board := newBoard()
	want := strings.Join([]string{
		"R N B Q K B N R .",
		"P P P P P P P P P",
		". . . . . . . . .",
		". . . . . . . . .",
		". . . . . . . . .",
		". . . . . . . . .",
		". . . . . . . . .",
		"p p p p p p p p p",
		"r n b q k b n r .",
	}, "\n") + "\n"
	if got := board.String(); got != want {
		t.Fatalf("render mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoardStateCopyIsIndependent(t *testing.T) {
	board := newBoard()
	scratch := board
	scratch.relocate(Position{Row: 1, Col: 4}, Position{Row: 3, Col: 4})

	if board.At(Position{Row: 1, Col: 4}) == nil {
		t.Fatalf("relocating on the copy emptied the original")
	}
	if board.At(Position{Row: 3, Col: 4}) != nil {
		t.Fatalf("relocating on the copy filled the original")
	}
}
