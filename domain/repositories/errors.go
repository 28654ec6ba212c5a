package repositories

import "errors"

// ErrDuplicate คืนเมื่อ insert/update ชน unique constraint
var ErrDuplicate = errors.New("duplicate record")
