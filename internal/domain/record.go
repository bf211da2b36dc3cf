package domain

// Canonical output column names expected by the dashboard.
const (
	ColumnSiteDescription = "Site_Description"
	ColumnLatitude        = "Latitude"
	ColumnLongitude       = "Longitude"
)

// DefaultSiteColumn is the site identifier column in the upstream export.
const DefaultSiteColumn = "SiteName"

// OutputColumns is the header of the coordinate table, in order.
var OutputColumns = []string{ColumnSiteDescription, ColumnLatitude, ColumnLongitude}

// CoordinateRecord is one site's map position. All three fields are non-null
// for every record produced by [DropIncomplete].
type CoordinateRecord struct {
	SiteDescription Value
	Latitude        Value
	Longitude       Value
}

// Complete reports whether all three fields are present.
func (r CoordinateRecord) Complete() bool {
	return !r.SiteDescription.IsNull() && !r.Latitude.IsNull() && !r.Longitude.IsNull()
}

// Fields returns the record as CSV fields in [OutputColumns] order.
func (r CoordinateRecord) Fields() []string {
	return []string{
		r.SiteDescription.String(),
		r.Latitude.FormatCoordinate(),
		r.Longitude.FormatCoordinate(),
	}
}
