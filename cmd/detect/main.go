package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plantvision/leaf-disease-api/internal/predictor"
)

// run resolves the process arguments to a verdict: args[1] is a
// base64-encoded leaf image, and a missing argument is reported inside
// the result rather than via the exit code.
func run(args []string) predictor.Result {
	if len(args) > 1 {
		return predictor.Predict(args[1])
	}
	return predictor.Result{Success: false, Error: "No image data provided"}
}

// One-shot detection: the verdict is printed as JSON on stdout and the
// exit code is always 0; failures are reported inside the JSON body.
func main() {
	out, err := json.Marshal(run(os.Args))
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
}
