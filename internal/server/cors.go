package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds cross-origin middleware configuration.
type CORSConfig struct {
	// AllowOrigins is the list of permitted origins. "*" permits any origin.
	AllowOrigins []string

	// AllowMethods defaults to GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS.
	AllowMethods []string

	// AllowHeaders is the value of Access-Control-Allow-Headers on preflight
	// responses. Empty echoes the requested headers back.
	AllowHeaders []string

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the header.
	MaxAge int
}

var defaultAllowMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost,
	http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// CORSMiddleware creates an Echo middleware handling cross-origin requests.
//
// Browser preflights (OPTIONS with Origin and Access-Control-Request-Method)
// for an allowed origin and method are answered directly with status 200.
// Echo's bundled CORS middleware answers preflights with 204; frontend
// tooling generated alongside this backend expects 200, so the middleware is
// carried here. Requests from origins not in the allow list pass through
// unmodified.
func CORSMiddleware(cfg CORSConfig) echo.MiddlewareFunc {
	allowMethods := cfg.AllowMethods
	if len(allowMethods) == 0 {
		allowMethods = defaultAllowMethods
	}
	methodList := strings.Join(allowMethods, ", ")
	headerList := strings.Join(cfg.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			// Responses differ by origin regardless of outcome
			res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)

			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" || !originAllowed(cfg.AllowOrigins, origin) {
				return next(c)
			}

			requestMethod := req.Header.Get(echo.HeaderAccessControlRequestMethod)
			preflight := req.Method == http.MethodOptions && requestMethod != ""

			if !preflight {
				res.Header().Set(echo.HeaderAccessControlAllowOrigin, origin)
				return next(c)
			}

			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestMethod)
			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestHeaders)

			if !methodAllowed(allowMethods, requestMethod) {
				return next(c)
			}

			res.Header().Set(echo.HeaderAccessControlAllowOrigin, origin)
			res.Header().Set(echo.HeaderAccessControlAllowMethods, methodList)

			if headerList != "" {
				res.Header().Set(echo.HeaderAccessControlAllowHeaders, headerList)
			} else if requested := req.Header.Get(echo.HeaderAccessControlRequestHeaders); requested != "" {
				res.Header().Set(echo.HeaderAccessControlAllowHeaders, requested)
			}

			if cfg.MaxAge > 0 {
				res.Header().Set(echo.HeaderAccessControlMaxAge, strconv.Itoa(cfg.MaxAge))
			}

			return c.NoContent(http.StatusOK)
		}
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func methodAllowed(allowed []string, method string) bool {
	for _, m := range allowed {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}
