package hopf

// Algebra is the capability contract a character's target must satisfy.
// Convolution needs Zero and Add, forest evaluation needs One and Mul, and
// antipode evaluation needs Neg. Making the contract explicit replaces the
// silent numeric defaults the recursion would otherwise assume: an algebra
// whose unit is not the literal 1 still folds empty forests correctly,
// because the fold starts from One().
type Algebra[V any] interface {
	Zero() V
	One() V
	Add(a, b V) V
	Mul(a, b V) V
	Neg(a V) V
}

// Float64Algebra is the standard algebra over float64.
type Float64Algebra struct{}

func (Float64Algebra) Zero() float64          { return 0 }
func (Float64Algebra) One() float64           { return 1 }
func (Float64Algebra) Add(a, b float64) float64 { return a + b }
func (Float64Algebra) Mul(a, b float64) float64 { return a * b }
func (Float64Algebra) Neg(a float64) float64    { return -a }

// IntAlgebra is the standard algebra over int.
type IntAlgebra struct{}

func (IntAlgebra) Zero() int        { return 0 }
func (IntAlgebra) One() int         { return 1 }
func (IntAlgebra) Add(a, b int) int { return a + b }
func (IntAlgebra) Mul(a, b int) int { return a * b }
func (IntAlgebra) Neg(a int) int    { return -a }
