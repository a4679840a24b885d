package repo

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrStoreNotFound         = errors.New("store not found")
	ErrBlogPostNotFound      = errors.New("blog post not found")
	ErrSnapshotNotFound      = errors.New("snapshot not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value on unique column")
)
