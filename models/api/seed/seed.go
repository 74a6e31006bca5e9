package seedapimodels

type SeedState string

const (
	SeedStateIdle    SeedState = "idle"
	SeedStateLoading SeedState = "loading"
	SeedStateLoaded  SeedState = "loaded"
	SeedStateFailed  SeedState = "failed"
)

type StatusView struct {
	State    SeedState `json:"state"`
	Error    string    `json:"error,omitempty"`
	JobCount int       `json:"job_count"`
	CvCount  int       `json:"cv_count"`
}
