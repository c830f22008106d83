// Package schema parses libcamera control and property definition documents
// (control_ids*.yaml, property_ids*.yaml).
//
// A document has the following structure:
//
//	vendor: libcamera          # optional, applies to every entry
//	controls:
//	  - AfMode:
//	      type: int32_t
//	      direction: inout     # optional
//	      description: |
//	        Control to set the mode of the AF algorithm.
//	      enum:
//	        - name: AfModeManual
//	          value: 0
//	          description: The AF algorithm is in manual mode.
//	  - ColourCorrectionMatrix:
//	      type: float
//	      size: [3, 3]
//	  - AfWindows:
//	      type: Rectangle
//	      size: [n]
//	      draft: true          # marks an experimental control
//
// Entries keep their document order. Parsing checks structure only; type
// names and sizes are interpreted by internal/plan.
package schema
