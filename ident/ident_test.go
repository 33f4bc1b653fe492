package ident

import "testing"

func TestWrapper(t *testing.T) {
	tests := []struct {
		domain, fn, want string
	}{
		{"memory", "store", "guestMemoryStore"},
		{"memory", "list_keys", "guestMemoryListKeys"},
		{"event", "list_subscriptions", "guestEventListSubscriptions"},
		{"provider", "get_models", "guestProviderGetModels"},
		{"test", "assert_equals", "guestTestAssertEquals"},
		{"output", "extract_json", "guestOutputExtractJson"},
	}
	for _, tt := range tests {
		t.Run(tt.domain+"/"+tt.fn, func(t *testing.T) {
			if got := Wrapper(tt.domain, tt.fn); got != tt.want {
				t.Errorf("Wrapper(%q, %q) = %q, want %q", tt.domain, tt.fn, got, tt.want)
			}
		})
	}
}

func TestWrapper_Distinct(t *testing.T) {
	// Distinct (domain, function) pairs with identical concatenations are the
	// only way to collide; the renderer double-checks within a domain.
	a := Wrapper("memory", "store")
	b := Wrapper("memory", "retrieve")
	if a == b {
		t.Errorf("distinct functions derived identical wrapper %q", a)
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"store", "Store"},
		{"list_keys", "ListKeys"},
		{"get_models", "GetModels"},
		{"a_b_c", "ABC"},
		{"__odd__", "Odd"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Camel(tt.in); got != tt.want {
			t.Errorf("Camel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImplName(t *testing.T) {
	if got := ImplName("list_keys"); got != "ListKeys" {
		t.Errorf("ImplName = %q, want ListKeys", got)
	}
}

func TestTableKey(t *testing.T) {
	if got := TableKey("list_keys"); got != "list_keys" {
		t.Errorf("TableKey = %q, want unchanged name", got)
	}
}

func TestPackageName(t *testing.T) {
	if got := PackageName("memory"); got != "memorybridge" {
		t.Errorf("PackageName = %q, want memorybridge", got)
	}
	if got := PackageName("long_term"); got != "longtermbridge" {
		t.Errorf("PackageName = %q, want longtermbridge", got)
	}
}
