package dto

// ==============================================
// CONTENT RESPONSE DTOs
// ==============================================

// BlogPostDTO - Public blog listing item
type BlogPostDTO struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt,omitempty"`
	Body        string `json:"body,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at,omitempty"`
}

// CaseStudyDTO - Public case study listing item
type CaseStudyDTO struct {
	ID         int    `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Client     string `json:"client"`
	Summary    string `json:"summary,omitempty"`
	Body       string `json:"body,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
}

// EventDTO - Public event listing item
type EventDTO struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at,omitempty"`
}

// ContentListResponse - Paginated content listing
type ContentListResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// ==============================================
// INQUIRY DTOs
// ==============================================

// CreateInquiryRequest - Public contact form submission
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=5,max=5000"`
}

// UpdateInquiryRequest - Admin status update
type UpdateInquiryRequest struct {
	Status string `json:"status" binding:"required,oneof=new read archived"`
}

// InquiryDTO
type InquiryDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// InquiryListResponse - Paginated inquiry listing
type InquiryListResponse struct {
	Items      []InquiryDTO   `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// ==============================================
// UPLOAD DTOs
// ==============================================

// UploadResponse - Stored file location
type UploadResponse struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}
