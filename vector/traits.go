package vector

// Cloner is implemented by element types whose copies need more than
// assignment. A failing Clone aborts the operation that requested the copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that release resources when
// their slot is destroyed.
type Destroyer interface {
	Destroy()
}

type traits struct {
	clones   bool
	destroys bool
}

func traitsOf[T any]() traits {
	var zero T
	_, c := any(zero).(Cloner[T])
	_, d := any(zero).(Destroyer)
	if !c || !d {
		// Pointer-receiver methods on a value type.
		p := any(&zero)
		if !c {
			_, c = p.(Cloner[T])
		}
		if !d {
			_, d = p.(Destroyer)
		}
	}
	return traits{clones: c, destroys: d}
}
