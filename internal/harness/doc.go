// Package harness runs scripted menu sessions against a real contacts file.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	contacts:            # optional records written to the file before the session
//	  - { id: 1, name: Ann, phone: "555", email: a@x, address: Main }
//	file: |              # optional raw file content, instead of contacts
//	  1	Ann	555	a@x	Main
//	input:               # one entry per console line
//	  - "1"
//	  - Ben
//	assertions:
//	  - type: output_contains
//	    text: "Contact added successfully. ID = 2"
//	  - type: final_ids
//	    ids: [1, 2]
//
// # Assertion Types
//
//   - output_contains: the session transcript contains text
//   - output_count: text occurs exactly count times in the transcript
//   - final_ids: ids reloaded from the file after the session, in order
//   - final_state: the reloaded contact with id has the given field values
//
// Every scenario runs in its own temporary directory. The final state is
// read back through the file backend, so a passing scenario also proves the
// file round trip.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/add.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(ctx, scenario)
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
