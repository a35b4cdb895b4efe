package handlers

// @title Gemini Proxy API
// @version 1.0
// @description Forwards generateContent requests to the Google generative-language API with a server-held key
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name generate
// @tag.description Generative content operations
