package hatch

// Bundle groups the given components into a single value that can be used
// wherever a component is expected. Bundles may be nested; they are
// flattened when the components are written to an entity.
func Bundle(components ...ErasedComponent) ErasedComponent {
	return &bundleComponent{Components: components}
}

type bundleComponent struct {
	Component[bundleComponent]
	Components []ErasedComponent
}

func flattenComponents(target []ErasedComponent, components ...ErasedComponent) []ErasedComponent {
	for _, component := range components {
		if bundle, ok := component.(*bundleComponent); ok {
			// recurse into the bundle and flatten its components
			target = flattenComponents(target, bundle.Components...)
		} else {
			target = append(target, component)
		}
	}

	return target
}
