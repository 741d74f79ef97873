package models

// Roles the session middleware recognises. The backend decides which one
// a user gets at login; the portal only carries it around in the session.
const (
	RoleAdmin     = "Admin"
	RoleApplicant = "Applicant"
)

// Job role statuses as the backend stores them.
const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
	StatusOnHold = "On Hold"
)

// Locations lists every office (plus Remote) a role can be posted for.
// The validators and the template dropdowns both read from here so they
// can never drift apart.
var Locations = []string{
	"Belfast NI",
	"Birmingham England",
	"Derry~Londonderry NI",
	"Dublin Ireland",
	"London England",
	"Gdansk Poland",
	"Helsinki Finland",
	"Paris France",
	"Antwerp Belgium",
	"Buenos Aires Argentina",
	"Indianapolis US",
	"Nova Scotia Canada",
	"Toronto Canada",
	"Remote",
}

// Capabilities lists the business practice areas a role belongs to.
var Capabilities = []string{
	"Engineering",
	"Analytics",
	"Product",
	"Design",
	"Quality Assurance",
	"Documentation",
	"Testing",
}

// Bands lists the seniority levels.
var Bands = []string{"Junior", "Mid", "Senior"}

// Statuses lists the lifecycle states a posting can be in.
var Statuses = []string{StatusOpen, StatusClosed, StatusOnHold}

// JobRole is a posting as the backend API returns it. The portal never
// stores these; they live only for the duration of a request.
type JobRole struct {
	ID                    int    `json:"id"`
	RoleName              string `json:"roleName"`
	Description           string `json:"description"`
	Responsibilities      string `json:"responsibilities"`
	JobSpecLink           string `json:"jobSpecLink"`
	Location              string `json:"location"`
	Capability            string `json:"capability"`
	Band                  string `json:"band"`
	ClosingDate           string `json:"closingDate"` // YYYY-MM-DD
	Status                string `json:"status"`
	NumberOfOpenPositions int    `json:"numberOfOpenPositions"`
}

// Application is a submitted application as forwarded to the backend.
type Application struct {
	ID            int    `json:"id,omitempty"`
	JobRoleID     int    `json:"jobRoleId"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"applicantEmail"`
	CoverLetter   string `json:"coverLetter,omitempty"`
	CVFileName    string `json:"cvFileName"`
}

// SearchParams holds the optional listing filters exactly as they arrive
// on the query string. Blank fields are simply absent from any URL built
// from them.
type SearchParams struct {
	Search     string
	Capability string
	Location   string
	Band       string
	Status     string
}

// IsZero reports whether no filter is set at all.
func (p SearchParams) IsZero() bool {
	return p.Search == "" && p.Capability == "" && p.Location == "" &&
		p.Band == "" && p.Status == ""
}
