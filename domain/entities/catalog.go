package entities

// CatalogItem is a purchasable service or a payable bill offered by the menus.
type CatalogItem struct {
	Name        string
	Description string
}

// Services returns the catalog of purchasable services. Purchases issue a
// reference token alongside the debit.
func Services() []CatalogItem {
	return []CatalogItem{
		{Name: "Electricity", Description: "Electricity Tokens"},
		{Name: "Data", Description: "Mobile Data Bundle"},
		{Name: "Airtime", Description: "Mobile Airtime"},
		{Name: "Water", Description: "Water Tokens"},
		{Name: "Gaming", Description: "Gaming Voucher"},
	}
}

// Bills returns the catalog of payable bills. Bill payments debit without a token.
func Bills() []CatalogItem {
	return []CatalogItem{
		{Name: "Netflix", Description: "Streaming Subscription"},
		{Name: "Internet", Description: "Internet Service Provider"},
		{Name: "Insurance", Description: "Monthly Insurance Premium"},
		{Name: "Gym", Description: "Gym Membership Fee"},
		{Name: "Rent", Description: "Monthly Rent Payment"},
	}
}
