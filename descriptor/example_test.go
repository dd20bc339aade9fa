package descriptor_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ardnew/archetype/descriptor"
)

func ExampleReadXML() {
	const doc = `
<archetype-script>
  <step label="Project">
    <input>
      <text name="name" label="Project name" default="myapp"/>
    </input>
  </step>
</archetype-script>`

	script, err := descriptor.ReadXML(context.Background(), strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)

		return
	}

	in := script.Steps[0].Inputs[0].Entries[0].Base()
	fmt.Println(in.Name, in.Default)
	// Output: name myapp
}

func ExampleRead_error() {
	_, err := descriptor.Read(context.Background(), descriptor.Events(
		descriptor.OpenEvent("archetype-script"),
		descriptor.OpenEvent("context"),
		descriptor.OpenEvent("text"),
	))
	fmt.Println(err)
	// Output: missing required attribute <text@path> in archetype-script/context
}

func ExampleFormatTree() {
	script, err := descriptor.Read(context.Background(), descriptor.Events(
		descriptor.OpenEvent("archetype-script"),
		descriptor.OpenEvent("context"),
		descriptor.OpenEvent("boolean", "path", "docker"),
		descriptor.TextEvent("true"),
		descriptor.CloseEvent("boolean"),
		descriptor.CloseEvent("context"),
		descriptor.CloseEvent("archetype-script"),
	))
	if err != nil {
		fmt.Println(err)

		return
	}

	_ = descriptor.FormatTree(context.Background(), os.Stdout, script, 2)
	// Output:
	// archetype-script
	//   context
	//     boolean docker = true
}
