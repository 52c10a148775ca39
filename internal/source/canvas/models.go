package canvas

// API response shapes, limited to the fields the syncer consumes.

type courseDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CourseCode   string `json:"course_code"`
	UpdatedAt    string `json:"updated_at"`
	SyllabusBody string `json:"syllabus_body"`
}

type Module struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	State     string       `json:"state"`
	Published bool         `json:"published"`
	UnlockAt  string       `json:"unlock_at"`
	UpdatedAt string       `json:"updated_at"`
	Items     []ModuleItem `json:"items"`
}

type ModuleItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	ContentID   int64  `json:"content_id"`
	PageURL     string `json:"page_url"`
	ExternalURL string `json:"external_url"`
	URL         string `json:"url"`
}

type Page struct {
	PageID    int64  `json:"page_id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	UpdatedAt string `json:"updated_at"`
}

type Assignment struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DueAt           string   `json:"due_at"`
	PointsPossible  float64  `json:"points_possible"`
	SubmissionTypes []string `json:"submission_types"`
	UpdatedAt       string   `json:"updated_at"`
}

type Quiz struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DueAt          string  `json:"due_at"`
	TimeLimit      float64 `json:"time_limit"`
	PointsPossible float64 `json:"points_possible"`
	QuestionCount  int     `json:"question_count"`
	UpdatedAt      string  `json:"updated_at"`
}

type QuizQuestion struct {
	ID           int64        `json:"id"`
	QuestionText string       `json:"question_text"`
	Answers      []QuizAnswer `json:"answers"`
}

type QuizAnswer struct {
	Text string `json:"text"`
}

// Discussion covers both discussion topics and announcements; the API
// serves them through the same shape.
type Discussion struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	PostedAt string `json:"posted_at"`
}

type File struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	UpdatedAt   string `json:"updated_at"`
	Size        int64  `json:"size"`
}

type Syllabus struct {
	Body      string
	UpdatedAt string
}

type folderDTO struct {
	ID int64 `json:"id"`
}
