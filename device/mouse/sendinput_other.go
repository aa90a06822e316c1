//go:build !windows

package mouse

type unsupportedInjector struct{}

// PlatformInjector returns an injector that always fails with
// ErrUnsupportedPlatform.
func PlatformInjector() Injector {
	return unsupportedInjector{}
}

func (unsupportedInjector) Inject(Event) error {
	return ErrUnsupportedPlatform
}
