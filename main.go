package main

import "github.com/leaguekeeper/teamdata/cmd/app"

func main() {
	app.Run()
}
