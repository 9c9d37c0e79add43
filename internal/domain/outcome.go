package domain

// Color is the pocket color of a wheel number.
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// Dozen identifies which third of the layout a number belongs to.
// Zero belongs to none.
type Dozen string

const (
	DozenNone   Dozen = "none"
	DozenFirst  Dozen = "first"
	DozenSecond Dozen = "second"
	DozenThird  Dozen = "third"
)

// Outcome is one resolved wheel result and its derived classifications.
// Every field is a pure function of Number.
type Outcome struct {
	Number int   `json:"number"`
	Color  Color `json:"color"`
	IsOdd  bool  `json:"is_odd"`
	IsEven bool  `json:"is_even"`
	Dozen  Dozen `json:"dozen"`
}

// IsZero reports whether the outcome is the green zero pocket.
func (o Outcome) IsZero() bool {
	return o.Number == 0
}
