package handlers

import (
	_ "embed"
	"net/http"
	"task-manager-api/internal/http/dto"
)

//go:embed openapi.json
var openAPISpec []byte

const (
	docsURL    = "/docs"
	redocURL   = "/redoc"
	openAPIURL = "/openapi.json"
)

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
<title>Task Manager API - Swagger UI</title>
<link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: '` + openAPIURL + `', dom_id: '#swagger-ui'})
</script>
</body>
</html>
`

const redocPage = `<!DOCTYPE html>
<html>
<head>
<title>Task Manager API - ReDoc</title>
<meta charset="utf-8"/>
</head>
<body>
<redoc spec-url="` + openAPIURL + `"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>
`

// GET /
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.RootResponse{
		Message:  "Добро пожаловать в Task Manager API!",
		DocsURL:  docsURL,
		RedocURL: redocURL,
	})
}

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Message: "Service is running normally",
	})
}

// GET /openapi.json
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

func Docs(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, swaggerPage)
}

func Redoc(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, redocPage)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
