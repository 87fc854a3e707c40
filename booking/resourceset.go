package booking

// ResourceSet marks which shared facilities a booking occupies. The zero
// value selects nothing and is invalid; build one through NewResourceSet.
type ResourceSet struct {
	tableTennis bool
	badminton   bool
}

func NewResourceSet(tableTennis, badminton bool) (ResourceSet, error) {
	set := ResourceSet{tableTennis: tableTennis, badminton: badminton}

	if err := set.Validate(); err != nil {
		return ResourceSet{}, err
	}

	return set, nil
}

func (r ResourceSet) Validate() error {
	if !r.tableTennis && !r.badminton {
		return ErrNoResourceSelected
	}

	return nil
}

func (r ResourceSet) TableTennis() bool { return r.tableTennis }

func (r ResourceSet) Badminton() bool { return r.badminton }

// Intersects reports whether both sets occupy at least one resource in
// common.
func (r ResourceSet) Intersects(other ResourceSet) bool {
	return (r.tableTennis && other.tableTennis) || (r.badminton && other.badminton)
}
