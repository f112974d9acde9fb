package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	lispy "github.com/mmxw/sicp"
)

// The tour script ships inside the binary so `lispy demo` works anywhere.
//
//go:embed demo.yaml
var demoManifest []byte

type demoTour struct {
	Title  string      `yaml:"title"`
	Groups []demoGroup `yaml:"groups"`
}

type demoGroup struct {
	Name  string   `yaml:"name"`
	Exprs []string `yaml:"exprs"`
}

// cmdDemo walks the embedded example tour against one shared environment,
// so definitions from earlier groups stay visible in later ones.
func cmdDemo(_ []string) int {
	var tour demoTour
	if err := yaml.Unmarshal(demoManifest, &tour); err != nil {
		fmt.Fprintf(os.Stderr, "%s: bad demo manifest: %v\n", appName, err)
		return 1
	}

	fmt.Println(tour.Title)
	fmt.Println(strings.Repeat("=", len(tour.Title)))

	env := lispy.StandardEnv()
	for _, g := range tour.Groups {
		fmt.Printf("\n%s\n%s\n", g.Name, strings.Repeat("-", len(g.Name)))
		for _, src := range g.Exprs {
			fmt.Printf("  %-40s => %s\n", src, demoResult(src, env))
		}
	}
	fmt.Println("\nDemo completed.")
	return 0
}

func demoResult(src string, env *lispy.Env) string {
	form, err := lispy.Parse(src)
	if err != nil {
		return red("Error: " + err.Error())
	}
	v, err := lispy.Eval(form, env)
	if err != nil {
		return red("Error: " + err.Error())
	}
	if v.Tag == lispy.VTNone {
		return green("✓")
	}
	return blue(lispy.Render(v))
}
