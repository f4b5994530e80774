package constants

// Tenant status
const (
	TenantStatusActive   = 1
	TenantStatusInactive = 0
)

// Discount status
const (
	DiscountStatusActive   = 1
	DiscountStatusInactive = 0
)

// Role dùng trong middleware auth
const (
	RoleCustomer    = 0
	RoleSuperAdmin  = 1
	RoleTenantAdmin = 2
	RoleStaff       = 3
)
