// @title           LokerHub API
// @version         1.0
// @description     Job board backend: companies post jobs, candidates apply.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "lokerhub_backend/internal/app"

func main() {
	app.Run()
}
