package intake

// Category codes resolved by the default keyword table. These must exist in
// the category reference data for the catalog lookup to succeed.
const (
	CategoryACBreakdown  = "ac_breakdown"
	CategoryElectrical   = "electrical"
	CategoryPlumbing     = "plumbing"
	CategoryHousekeeping = "housekeeping"
	CategoryPestControl  = "pest_control"
	CategoryCarpentry    = "carpentry"
	CategoryInternet     = "internet"
	CategoryElevator     = "elevator"
	CategorySecurity     = "security_issue"
)

// DefaultCategoryKeywords is the canonical classification table. The
// declaration order is the tie-break for equal scores and must not be
// reordered without migrating the classifier test fixtures.
var DefaultCategoryKeywords = []CategoryKeywords{
	{
		Code: CategoryACBreakdown,
		Keywords: []string{
			"ac", "hvac", "air conditioning", "air conditioner",
			"ac not working", "ac not cooling", "cooling", "compressor",
		},
	},
	{
		Code: CategoryElectrical,
		Keywords: []string{
			"electrical", "electricity", "power", "socket", "switch",
			"light not working", "power failure", "short circuit", "fuse",
		},
	},
	{
		Code: CategoryPlumbing,
		Keywords: []string{
			"plumbing", "leak", "leakage", "tap", "faucet", "drainage",
			"water leakage", "pipe burst", "clogged drain", "flush",
		},
	},
	{
		Code: CategoryHousekeeping,
		Keywords: []string{
			"cleaning", "housekeeping", "garbage", "trash", "dust",
			"not cleaned", "spill", "dustbin full",
		},
	},
	{
		Code: CategoryPestControl,
		Keywords: []string{
			"pest", "cockroach", "rodent", "rat", "termite",
			"pest control", "insects",
		},
	},
	{
		Code: CategoryCarpentry,
		Keywords: []string{
			"carpentry", "door", "hinge", "drawer", "furniture",
			"door not closing", "broken chair", "lock jammed",
		},
	},
	{
		Code: CategoryInternet,
		Keywords: []string{
			"internet", "wifi", "network", "lan", "router",
			"internet down", "wifi not working", "no connectivity",
		},
	},
	{
		Code: CategoryElevator,
		Keywords: []string{
			"elevator", "lift", "escalator",
			"lift not working", "elevator stuck",
		},
	},
	{
		Code: CategorySecurity,
		Keywords: []string{
			"security", "intruder", "theft", "cctv", "unauthorized",
			"access card", "tailgating",
		},
	},
}
