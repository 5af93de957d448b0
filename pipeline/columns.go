package pipeline

// Column names of the Ames assessor table the pipeline treats specially.
const (
	ColSalePrice = "SalePrice"

	ColOrder = "Order"
	ColPID   = "PID"

	ColYearBuilt = "Year Built"
	ColYearRemod = "Year Remod/Add"
	ColYrSold    = "Yr Sold"
	ColMoSold    = "Mo Sold"

	ColSaleType      = "Sale Type"
	ColSaleCondition = "Sale Condition"

	// Derived age features.
	ColYearsBeforeSale = "Years Before Sale"
	ColYearsSinceRemod = "Years Since Remod"
)

// identifierColumns carry no predictive signal: a row sequence number and
// the parcel id.
var identifierColumns = []string{ColOrder, ColPID}

// leakageColumns describe the sale itself and would leak post-sale
// information into the features.
var leakageColumns = []string{ColMoSold, ColYrSold, ColSaleType, ColSaleCondition}

// rawYearColumns are redundant once the age features are derived.
var rawYearColumns = []string{ColYearBuilt, ColYearRemod}

// DefaultNominalColumns returns the Ames columns that are semantically
// nominal even when they parse as numbers (MS SubClass in particular).
func DefaultNominalColumns() []string {
	return []string{
		"MS SubClass", "MS Zoning", "Street", "Alley", "Land Contour",
		"Lot Config", "Neighborhood", "Condition 1", "Condition 2",
		"Bldg Type", "House Style", "Roof Style", "Roof Matl",
		"Exterior 1st", "Exterior 2nd", "Mas Vnr Type", "Foundation",
		"Heating", "Central Air",
	}
}
