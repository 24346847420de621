package cxf

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/colour-science/cxf-go/internal/xmltree"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Validate checks raw document bytes against the CxF3 schema. It is a pure
// check: no Document is built and the input is not retained. Checks run in
// increasing-cost order and stop at the first violation:
//
//  1. markup well-formedness
//  2. structural conformance (root, namespace, child order, unknown
//     elements/attributes, required presence)
//  3. enumerated-domain membership
//  4. numeric range constraints
//  5. cross-reference integrity (colour-specification references, duplicate ids)
func Validate(data []byte) error {
	root, err := xmltree.Parse(data)
	if err != nil {
		return issueCaused("/", CodeMalformedMarkup, err.Error(), err)
	}
	if iss := checkRoot(root); iss != nil {
		return iss
	}
	if iss := checkStructure(root, "/CxF"); iss != nil {
		return iss
	}
	if iss := checkValues(root, "/CxF"); iss != nil {
		return iss
	}
	if iss := checkReferences(root); iss != nil {
		return iss
	}
	return nil
}

func checkRoot(root *xmltree.Element) Issues {
	if root.Local != "CxF" {
		return issueAt("/", CodeUnexpectedRoot, fmt.Sprintf("expected root element CxF, found %s", root.Local))
	}
	if root.Space != Namespace {
		return issueAt("/CxF", CodeWrongNamespace, fmt.Sprintf("expected namespace %s, found %q", Namespace, root.Space))
	}
	return nil
}

// ---- pass 2: structure ----

func checkStructure(el *xmltree.Element, path string) Issues {
	if iss := checkAttrsPresent(el, path); iss != nil {
		return iss
	}

	if el.Local == "CustomResources" && el.Space == Namespace {
		// Opaque foreign payload: children must live outside the CxF namespace
		// and are otherwise not inspected.
		for _, c := range el.Children {
			if c.Space == Namespace {
				return issueAt(path+"/"+c.Local, CodeUnknownElement,
					"CustomResources admits foreign-namespace content only")
			}
		}
		return nil
	}

	slots, container := contentModel[el.Local]
	if container && strings.TrimSpace(el.Text) != "" {
		return issueAt(path, CodeUnexpectedText, fmt.Sprintf("element %s does not allow character data", el.Local))
	}
	if !container {
		// Leaf: text only.
		if len(el.Children) > 0 {
			c := el.Children[0]
			return issueAt(path+"/"+c.Local, CodeUnknownElement,
				fmt.Sprintf("element %s inside leaf element %s", c.Local, el.Local))
		}
		return nil
	}

	cur := 0
	used := make([]int, len(slots))
	seen := map[string]int{}
	for _, c := range el.Children {
		if c.Space != Namespace {
			return issueAt(path+"/"+c.Local, CodeUnknownElement,
				fmt.Sprintf("foreign element %s outside CustomResources", c.Local))
		}
		seen[c.Local]++
		cpath := childStructPath(path, slots, c.Local, seen[c.Local])

		si := slotIndex(slots, c.Local)
		if si < 0 {
			return issueAt(cpath, CodeUnknownElement, fmt.Sprintf("unknown element %s in %s", c.Local, el.Local))
		}
		if si < cur {
			return issueAt(cpath, CodeElementOrder, fmt.Sprintf("element %s out of schema order in %s", c.Local, el.Local))
		}
		if si > cur {
			for k := cur; k < si; k++ {
				if slots[k].required && used[k] == 0 {
					return issueAt(path+"/"+slots[k].names[0], CodeRequired,
						fmt.Sprintf("required element %s missing in %s", slots[k].names[0], el.Local))
				}
			}
			cur = si
		}
		if !slots[si].repeat && used[si] > 0 {
			if len(slots[si].names) > 1 {
				return issueAt(cpath, CodeInvalidChoice,
					fmt.Sprintf("more than one of %s in %s", strings.Join(slots[si].names, "|"), el.Local))
			}
			return issueAt(cpath, CodeElementOrder, fmt.Sprintf("element %s occurs more than once in %s", c.Local, el.Local))
		}
		used[si]++

		if iss := checkStructure(c, cpath); iss != nil {
			return iss
		}
	}
	for k := cur; k < len(slots); k++ {
		if slots[k].required && used[k] == 0 {
			name := slots[k].names[0]
			if len(slots[k].names) > 1 {
				return issueAt(path, CodeInvalidChoice,
					fmt.Sprintf("one of %s required in %s", strings.Join(slots[k].names, "|"), el.Local))
			}
			return issueAt(path+"/"+name, CodeRequired,
				fmt.Sprintf("required element %s missing in %s", name, el.Local))
		}
	}
	return nil
}

func checkAttrsPresent(el *xmltree.Element, path string) Issues {
	spec := attrModel[el.Local]
	for _, a := range el.Attrs {
		if a.Space == xsiNamespace {
			continue // schema-instance annotations are tolerated
		}
		if a.Space != "" || !spec.admits(a.Local) {
			return issueAt(path+"/@"+a.Local, CodeUnknownAttribute,
				fmt.Sprintf("unknown attribute %s on %s", a.Local, el.Local))
		}
	}
	for _, name := range spec.required {
		v, ok := el.Attr(name)
		if !ok {
			return issueAt(path+"/@"+name, CodeRequired,
				fmt.Sprintf("required attribute %s missing on %s", name, el.Local))
		}
		if strings.TrimSpace(v) == "" {
			return issueAt(path+"/@"+name, CodeEmptyValue,
				fmt.Sprintf("required attribute %s empty on %s", name, el.Local))
		}
	}
	return nil
}

func slotIndex(slots []slot, name string) int {
	for j, s := range slots {
		for _, n := range s.names {
			if n == name {
				return j
			}
		}
	}
	return -1
}

// childStructPath appends an occurrence index for repeatable children so that
// issue paths stay unambiguous.
func childStructPath(path string, slots []slot, name string, occurrence int) string {
	si := slotIndex(slots, name)
	if si >= 0 && slots[si].repeat {
		return fmt.Sprintf("%s/%s[%d]", path, name, occurrence)
	}
	return path + "/" + name
}

// ---- passes 3+4: enumerated domains and numeric ranges ----

func checkValues(el *xmltree.Element, path string) Issues {
	if el.Local == "CustomResources" && el.Space == Namespace {
		return nil
	}
	for _, a := range el.Attrs {
		if a.Space != "" {
			continue
		}
		if rule, ok := attrValueRules[el.Local+"/@"+a.Local]; ok {
			if iss := checkScalar(rule, a.Value, path+"/@"+a.Local); iss != nil {
				return iss
			}
		}
	}
	if iss := checkSpectrumWindow(el, path); iss != nil {
		return iss
	}

	seen := map[string]int{}
	slots := contentModel[el.Local]
	for _, c := range el.Children {
		seen[c.Local]++
		cpath := childStructPath(path, slots, c.Local, seen[c.Local])
		if rule, ok := elementValueRules[el.Local+"/"+c.Local]; ok {
			if iss := checkScalar(rule, c.Text, cpath); iss != nil {
				return iss
			}
		}
		if iss := checkValues(c, cpath); iss != nil {
			return iss
		}
	}
	return nil
}

// checkSpectrumWindow enforces the cross-attribute constraint EndWL >= StartWL
// on spectra; the per-attribute window and positivity rules live in
// attrValueRules.
func checkSpectrumWindow(el *xmltree.Element, path string) Issues {
	if el.Local != "ReflectanceSpectrum" && el.Local != "TransmittanceSpectrum" {
		return nil
	}
	start, okS := el.Attr("StartWL")
	end, okE := el.Attr("EndWL")
	if !okS || !okE {
		return nil
	}
	s, errS := strconv.ParseFloat(strings.TrimSpace(start), 64)
	e, errE := strconv.ParseFloat(strings.TrimSpace(end), 64)
	if errS != nil || errE != nil {
		return nil // reported by the per-attribute rules
	}
	if e < s {
		return issueAt(path+"/@EndWL", CodeDomainRange,
			fmt.Sprintf("EndWL %v precedes StartWL %v", e, s))
	}
	return nil
}

func checkScalar(rule valueRule, raw, path string) Issues {
	v := strings.TrimSpace(raw)
	switch rule.kind {
	case kindText:
		return nil
	case kindNonEmptyText:
		if v == "" {
			return issueAt(path, CodeEmptyValue, "value must not be empty")
		}
	case kindFloat:
		if v == "" {
			return issueAt(path, CodeEmptyValue, "value must not be empty")
		}
		fv, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return issueCaused(path, CodeInvalidNumber, fmt.Sprintf("invalid number %q", v), err)
		}
		return checkBounds(rule, fv, path)
	case kindFloatList:
		if v == "" {
			return issueAt(path, CodeEmptyValue, "value must not be empty")
		}
		for _, field := range strings.Fields(v) {
			fv, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return issueCaused(path, CodeInvalidNumber, fmt.Sprintf("invalid number %q in sample list", field), err)
			}
			if iss := checkBounds(rule, fv, path); iss != nil {
				return iss
			}
		}
	case kindDateTime:
		if v == "" {
			return issueAt(path, CodeEmptyValue, "value must not be empty")
		}
		if _, err := ParseDateTime(v); err != nil {
			return issueCaused(path, CodeInvalidDateTime, err.Error(), err)
		}
	case kindBase64:
		if v == "" {
			return issueAt(path, CodeEmptyValue, "value must not be empty")
		}
		compact := strings.Join(strings.Fields(v), "")
		if _, err := base64.StdEncoding.DecodeString(compact); err != nil {
			return issueCaused(path, CodeInvalidBase64, "invalid base64 payload", err)
		}
	case kindGUID:
		if _, err := uuid.Parse(v); err != nil {
			return issueCaused(path, CodeInvalidGUID, fmt.Sprintf("invalid GUID %q", v), err)
		}
	case kindEnum:
		if !rule.enum(v) {
			return issueAt(path, CodeInvalidEnum, fmt.Sprintf("%q is not a valid %s", v, rule.enumName))
		}
	}
	return nil
}

func checkBounds(rule valueRule, v float64, path string) Issues {
	if rule.min != nil {
		if rule.minExclusive && v <= *rule.min {
			return issueAt(path, CodeDomainRange, fmt.Sprintf("value %v must be greater than %v", v, *rule.min))
		}
		if !rule.minExclusive && v < *rule.min {
			return issueAt(path, CodeDomainRange, fmt.Sprintf("value %v below minimum %v", v, *rule.min))
		}
	}
	if rule.max != nil && v > *rule.max {
		return issueAt(path, CodeDomainRange, fmt.Sprintf("value %v above maximum %v", v, *rule.max))
	}
	return nil
}

// ---- pass 5: cross-reference integrity ----

func checkReferences(root *xmltree.Element) Issues {
	specIDs, iss := collectSpecIDs(root)
	if iss != nil {
		return iss
	}
	if iss := checkObjectIDs(root); iss != nil {
		return iss
	}
	return walkRefs(root, "/CxF", specIDs)
}

func collectSpecIDs(root *xmltree.Element) (map[string]bool, Issues) {
	ids := map[string]bool{}
	res := root.Find("Resources")
	if res == nil {
		return ids, nil
	}
	coll := res.Find("ColorSpecificationCollection")
	if coll == nil {
		return ids, nil
	}
	for i, spec := range coll.FindAll("ColorSpecification") {
		id, ok := spec.Attr("Id")
		if !ok {
			continue // reported by the structural pass
		}
		if ids[id] {
			path := fmt.Sprintf("/CxF/Resources/ColorSpecificationCollection/ColorSpecification[%d]/@Id", i+1)
			return nil, issueAt(path, CodeDuplicateID, fmt.Sprintf("duplicate ColorSpecification id %q", id))
		}
		ids[id] = true
	}
	return ids, nil
}

func checkObjectIDs(root *xmltree.Element) Issues {
	res := root.Find("Resources")
	if res == nil {
		return nil
	}
	coll := res.Find("ObjectCollection")
	if coll == nil {
		return nil
	}
	ids := map[string]bool{}
	for i, obj := range coll.FindAll("Object") {
		id, ok := obj.Attr("Id")
		if !ok {
			continue // reported by the structural pass
		}
		if ids[id] {
			path := fmt.Sprintf("/CxF/Resources/ObjectCollection/Object[%d]/@Id", i+1)
			return issueAt(path, CodeDuplicateID, fmt.Sprintf("duplicate Object id %q", id))
		}
		ids[id] = true
	}
	return nil
}

func walkRefs(el *xmltree.Element, path string, specIDs map[string]bool) Issues {
	if el.Local == "CustomResources" && el.Space == Namespace {
		return nil
	}
	if ref, ok := el.Attr("ColorSpecification"); ok && el.Local != "ColorSpecification" {
		if !specIDs[ref] {
			return issueAt(path+"/@ColorSpecification", CodeReferenceUnresolved,
				fmt.Sprintf("colour-specification reference %q does not resolve", ref))
		}
	}
	seen := map[string]int{}
	slots := contentModel[el.Local]
	for _, c := range el.Children {
		seen[c.Local]++
		cpath := childStructPath(path, slots, c.Local, seen[c.Local])
		if iss := walkRefs(c, cpath, specIDs); iss != nil {
			return iss
		}
	}
	return nil
}
