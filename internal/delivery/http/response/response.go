package response

import "github.com/gin-gonic/gin"

// Response is the uniform JSON envelope for every API reply. RequestID
// echoes the id set by the RequestID middleware so callers can quote it
// when reporting problems.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	write(c, code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status code.
func Error(c *gin.Context, code int, message string, err interface{}) {
	write(c, code, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func write(c *gin.Context, code int, resp Response) {
	resp.RequestID = requestID(c)
	c.JSON(code, resp)
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}
