package shape

// FromDecl is implemented by types gen-shape derives.
type FromDecl interface {
	FromDecl(decl *Decl) error
}

type fromDeclPtr[T any] interface {
	*T
	FromDecl
}

// Parse turns in into a declaration tree and builds a T from it.
//
// Errors are either *InputError (in could not be converted) or whatever the
// generated FromDecl returns, usually *UnsupportedError.
func Parse[T any, PT fromDeclPtr[T]](in Input) (*T, error) {
	if in == nil {
		return nil, &InputError{Err: errNilDecl}
	}
	decl, err := in.ToDecl()
	if err != nil {
		return nil, err
	}
	if decl.Data == nil {
		return nil, &InputError{Err: errNoData}
	}
	out := new(T)
	if err := PT(out).FromDecl(decl); err != nil {
		return nil, err
	}
	return out, nil
}
