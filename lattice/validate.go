package lattice

import "github.com/viant/ifds/ifdserr"

// Validate performs the cheap, elidable sanity checks over samples:
// join(x,x)=x, join(x,Top)=x, join(x,Bottom)=Bottom, and commutativity
// join(x,y)=join(y,x). It returns a LatticeInvariant error describing the
// first violation found, or nil if every sample passes.
func Validate[L any](lat Lattice[L], samples []L) error {
	top := lat.Top()
	bottom := lat.Bottom()

	for _, x := range samples {
		if !lat.Equal(lat.Join(x, x), x) {
			return ifdserr.New(ifdserr.LatticeInvariant, "join(x, x) != x")
		}
		if !lat.Equal(lat.Join(x, top), x) {
			return ifdserr.New(ifdserr.LatticeInvariant, "join(x, top) != x")
		}
		if !lat.Equal(lat.Join(x, bottom), bottom) {
			return ifdserr.New(ifdserr.LatticeInvariant, "join(x, bottom) != bottom")
		}
	}
	for i := range samples {
		for j := range samples {
			if !lat.Equal(lat.Join(samples[i], samples[j]), lat.Join(samples[j], samples[i])) {
				return ifdserr.New(ifdserr.LatticeInvariant, "join(x, y) != join(y, x)")
			}
		}
	}
	return nil
}
