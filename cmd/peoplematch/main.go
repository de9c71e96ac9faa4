package main

import "github.com/cleitonmarx/symbiont-people-match/internal/app"

func main() {
	err := app.NewPeopleMatchApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
