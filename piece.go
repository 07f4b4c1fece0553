package chess

// Color represents the color of a chess piece.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// White represents the color white.
	White
	// Black represents the color black.
	Black
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's FEN compatible notation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// index maps White and Black onto 0 and 1 for per-color tables.
func (c Color) index() int {
	if c == Black {
		return 1
	}
	return 0
}

// PieceType is the type of a piece.
type PieceType int8

const (
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = iota
	// King represents a king.
	King
	// Queen represents a queen.
	Queen
	// Rook represents a rook.
	Rook
	// Bishop represents a bishop.
	Bishop
	// Knight represents a knight.
	Knight
	// Pawn represents a pawn.
	Pawn
)

// PieceTypes returns a slice of all piece types.
func PieceTypes() [6]PieceType {
	return [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

// PromotableTypes returns the kinds a pawn may promote to, in the order
// the move generator emits them.
func PromotableTypes() [4]PieceType {
	return [4]PieceType{Queen, Rook, Bishop, Knight}
}

func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// Name returns the lower case English name of the type.
func (p PieceType) Name() string {
	switch p {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	}
	return ""
}

// sanLetter is the upper case letter used in algebraic notation.
// Pawns have none.
func (p PieceType) sanLetter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

func (p PieceType) promotable() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

func pieceTypeFromByte(b byte) PieceType {
	switch b {
	case 'k', 'K':
		return King
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	case 'p', 'P':
		return Pawn
	}
	return NoPieceType
}

// Piece is a piece type with a color. The zero value is NoPiece.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece represents an empty square.
var NoPiece = Piece{}

// NewPiece returns the piece matching the PieceType and Color.
func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// Empty reports whether p is NoPiece.
func (p Piece) Empty() bool {
	return p.Type == NoPieceType
}

// String returns the FEN letter of the piece: upper case for White.
func (p Piece) String() string {
	s := p.Type.String()
	if s == "" {
		return "."
	}
	if p.Color == White {
		return string(rune(s[0] - 'a' + 'A'))
	}
	return s
}

func pieceFromFEN(b byte) (Piece, bool) {
	t := pieceTypeFromByte(b)
	if t == NoPieceType {
		return NoPiece, false
	}
	c := Black
	if b >= 'A' && b <= 'Z' {
		c = White
	}
	return Piece{Type: t, Color: c}, true
}
