package plan_test

import (
	"bytes"
	"fmt"

	"github.com/planboard/planboard/pkg/plan"
)

func ExampleWritePlan() {
	p := plan.Plan{
		Name: "onboarding",
		Steps: []plan.Step{
			{ID: "setup", Children: []string{"account"}},
			{ID: "account", Status: plan.StatusDone},
		},
	}

	var buf bytes.Buffer
	if err := plan.WritePlan(p, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(buf.String())
	// Output:
	// {
	//   "name": "onboarding",
	//   "steps": [
	//     {
	//       "id": "setup",
	//       "children": [
	//         "account"
	//       ]
	//     },
	//     {
	//       "id": "account",
	//       "status": "done"
	//     }
	//   ]
	// }
}

func ExamplePlan_Compute() {
	p := plan.Plan{Steps: []plan.Step{
		{ID: "root", Children: []string{"a", "b"}},
		{ID: "a"},
		{ID: "b"},
	}}

	res := p.Compute()

	fmt.Println("Steps placed:", len(res.Positions))
	fmt.Printf("Board: %.0f×%.0f\n", res.Width, res.Height)
	// Output:
	// Steps placed: 3
	// Board: 570×300
}

func ExamplePlan_Validate() {
	p := plan.Plan{Steps: []plan.Step{
		{ID: "build", Children: []string{"test", "ghost"}},
		{ID: "test"},
	}}

	for _, issue := range p.Validate() {
		fmt.Println(issue)
	}
	// Output:
	// step "build" references unknown child "ghost"
}
