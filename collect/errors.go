package collect

import "errors"

// ErrParse is the sentinel wrapped by Parse when the parser reports a syntax
// error; spec.md §7 treats this as fatal input error.
var ErrParse = errors.New("collect: parse error")
