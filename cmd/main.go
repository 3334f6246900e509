package main

// @title Movia API
// @version 1.0
// @description TMDB catalog sync: movies, TV series and their genres, companies, countries and languages

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	Execute()
}
