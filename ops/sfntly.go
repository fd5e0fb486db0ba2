package ops

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/foldwell/webfontgen/format"
)

// sfntlyClasspathEnv, when set, names the Java classpath containing the
// sfntly jars and the ConvertFont wrapper class.
const sfntlyClasspathEnv = "WEBFONTGEN_SFNTLY_CLASSPATH"

// Sfntly takes the first input file (always ttf) and passes every output
// path to one `java -cp <classpath> ConvertFont <input> -o <out> ...`
// invocation, batching woff and eot together when both are requested.
var Sfntly = &Operation{Name: "sfntly", Run: func(inputs, outputs []*format.FontFile, logger *log.Logger) error {
	if len(inputs) == 0 {
		return nil
	}
	input := inputs[0]
	outPaths := make([]string, len(outputs))
	for i, f := range outputs {
		outPaths[i] = f.FullPath
	}

	logger.Printf("using sfntly to convert %s to %s", input.FullPath, strings.Join(outPaths, ", "))

	if len(outputs) == 0 {
		return nil
	}
	if err := ensureFileDir(outputs[0].FullPath); err != nil {
		return err
	}

	classpath, err := sfntlyClasspath()
	if err != nil {
		return err
	}

	args := []string{"-cp", classpath, "ConvertFont", input.FullPath}
	for _, path := range outPaths {
		args = append(args, "-o", path)
	}

	cmd := exec.Command("java", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: sfntly conversion failed:\noutput from sfntly:\n%s", ErrToolFailure, indent(stderr.String(), "  "))
	}

	if missing := missingOutputs(outputs); len(missing) > 0 {
		return missingOutputsError(missing, stderr.String())
	}

	return nil
}}

// sfntlyClasspath resolves the Java classpath for the sfntly ConvertFont
// wrapper: the WEBFONTGEN_SFNTLY_CLASSPATH environment variable if set,
// otherwise a vendor/ directory next to this program's own executable.
func sfntlyClasspath() (string, error) {
	if cp := os.Getenv(sfntlyClasspathEnv); cp != "" {
		return cp, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "vendor", "sfntly", "classes"), nil
}
