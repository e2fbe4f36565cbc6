package handlers

// @title Serverless Router API
// @version 1.0
// @description Example routes served by the serverless request router, in Lambda or on the local server
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name examples
// @tag.description Example handlers

// @tag.name system
// @tag.description Health and diagnostics
