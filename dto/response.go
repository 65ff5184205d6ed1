package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Failed to load blog posts. Please try again."`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"post deleted successfully"`
}

// RedirectResponseDTO는 로그인이 필요할 때 JSON 클라이언트에 보내는 응답이다.
type RedirectResponseDTO struct {
	Error    string `json:"error" example:"unauthenticated"`
	Location string `json:"location" example:"/admin/login"`
}
