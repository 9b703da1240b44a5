package refine

// Predeclared tags for small constants. Callers needing other values declare
// their own tag types next to the constraint that uses them.
type (
	Zero     struct{}
	One      struct{}
	Two      struct{}
	Three    struct{}
	Four     struct{}
	Five     struct{}
	Six      struct{}
	Seven    struct{}
	Eight    struct{}
	Nine     struct{}
	Ten      struct{}
	Thirteen struct{}
	Sixteen  struct{}
)

func (Zero) Value() int     { return 0 }
func (One) Value() int      { return 1 }
func (Two) Value() int      { return 2 }
func (Three) Value() int    { return 3 }
func (Four) Value() int     { return 4 }
func (Five) Value() int     { return 5 }
func (Six) Value() int      { return 6 }
func (Seven) Value() int    { return 7 }
func (Eight) Value() int    { return 8 }
func (Nine) Value() int     { return 9 }
func (Ten) Value() int      { return 10 }
func (Thirteen) Value() int { return 13 }
func (Sixteen) Value() int  { return 16 }
