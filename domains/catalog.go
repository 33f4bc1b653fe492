// Package domains holds the built-in catalog of API domains the generator
// ships with. The catalog is an ordinary immutable configuration value:
// callers pass it explicitly into the batch driver, and Catalog returns a
// fresh slice on every call so nothing can mutate shared state.
package domains

import "github.com/scriptkit/bridgegen/spec"

// Catalog returns the built-in domains in their stable declared order.
// Every domain is valid by construction; Validate is still run by the
// renderer before any text is emitted.
func Catalog() []spec.Domain {
	return []spec.Domain{
		{
			Name:        "provider",
			Description: "LLM provider access and configuration",
			Functions: []spec.Function{
				{Name: "chat", Doc: "host.provider.chat(messages, options?) -> response"},
				{Name: "configure", Doc: "host.provider.configure(provider_id, config) -> success"},
				{Name: "list", Doc: "host.provider.list() -> provider_list"},
				{Name: "get", Doc: "host.provider.get(provider_id) -> provider_info"},
				{Name: "create", Doc: "host.provider.create(config) -> provider_id"},
				{Name: "destroy", Doc: "host.provider.destroy(provider_id) -> success"},
				{Name: "stream", Doc: "host.provider.stream(messages, callback, options?) -> stream_id"},
				{Name: "get_models", Doc: "host.provider.get_models(provider_id) -> model_list"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Type", Values: []string{"OPENAI", "ANTHROPIC", "COHERE", "LOCAL"}},
				{Name: "Status", Values: []string{"ACTIVE", "INACTIVE", "ERROR", "INITIALIZING"}},
			},
		},
		{
			Name:        "event",
			Description: "Event emission and subscription",
			Functions: []spec.Function{
				{Name: "emit", Doc: "host.event.emit(event_name, data) -> success"},
				{Name: "subscribe", Doc: "host.event.subscribe(event_name, callback) -> subscription_id"},
				{Name: "unsubscribe", Doc: "host.event.unsubscribe(subscription_id) -> success"},
				{Name: "list_subscriptions", Doc: "host.event.list_subscriptions() -> subscription_list"},
				{Name: "filter", Doc: "host.event.filter(pattern, callback) -> filter_id"},
				{Name: "record", Doc: "host.event.record(event_name, duration?) -> recorder_id"},
				{Name: "replay", Doc: "host.event.replay(recorder_id, options?) -> success"},
				{Name: "clear", Doc: "host.event.clear(event_name?) -> success"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Type", Values: []string{"SYSTEM", "USER", "AGENT", "TOOL", "WORKFLOW"}},
				{Name: "Priority", Values: []string{"LOW", "NORMAL", "HIGH", "CRITICAL"}},
			},
		},
		{
			Name:        "test",
			Description: "Testing and mocking framework",
			Functions: []spec.Function{
				{Name: "create_scenario", Doc: "host.test.create_scenario(definition) -> scenario_id"},
				{Name: "run_scenario", Doc: "host.test.run_scenario(scenario_id, options?) -> result"},
				{Name: "assert_equals", Doc: "host.test.assert_equals(actual, expected, message?) -> success"},
				{Name: "assert_contains", Doc: "host.test.assert_contains(haystack, needle, message?) -> success"},
				{Name: "create_mock", Doc: "host.test.create_mock(definition) -> mock_id"},
				{Name: "setup_fixture", Doc: "host.test.setup_fixture(fixture_data) -> fixture_id"},
				{Name: "run_suite", Doc: "host.test.run_suite(suite_definition) -> suite_result"},
				{Name: "get_coverage", Doc: "host.test.get_coverage() -> coverage_report"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "AssertType", Values: []string{"EQUALS", "CONTAINS", "MATCHES", "THROWS"}},
				{Name: "MockType", Values: []string{"FUNCTION", "OBJECT", "SERVICE"}},
			},
		},
		{
			Name:        "schema",
			Description: "JSON schema validation and generation",
			Functions: []spec.Function{
				{Name: "validate", Doc: "host.schema.validate(data, schema) -> validation_result"},
				{Name: "generate", Doc: "host.schema.generate(example_data) -> schema"},
				{Name: "coerce", Doc: "host.schema.coerce(data, schema) -> coerced_data"},
				{Name: "extract", Doc: "host.schema.extract(data, schema) -> extracted_data"},
				{Name: "merge", Doc: "host.schema.merge(schema1, schema2) -> merged_schema"},
				{Name: "create", Doc: "host.schema.create(definition) -> schema"},
				{Name: "compile", Doc: "host.schema.compile(schema_source) -> compiled_schema"},
				{Name: "get_info", Doc: "host.schema.get_info(schema) -> schema_info"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Type", Values: []string{"OBJECT", "ARRAY", "STRING", "NUMBER", "BOOLEAN", "NULL"}},
				{Name: "Format", Values: []string{"EMAIL", "URI", "DATE", "UUID"}},
			},
		},
		{
			Name:        "memory",
			Description: "Memory management and conversation history",
			Functions: []spec.Function{
				{Name: "store", Doc: "host.memory.store(key, value, options?) -> success"},
				{Name: "retrieve", Doc: "host.memory.retrieve(key) -> value"},
				{Name: "delete", Doc: "host.memory.delete(key) -> success"},
				{Name: "list_keys", Doc: "host.memory.list_keys(pattern?) -> key_list"},
				{Name: "clear", Doc: "host.memory.clear() -> success"},
				{Name: "get_stats", Doc: "host.memory.get_stats() -> memory_stats"},
				{Name: "persist", Doc: "host.memory.persist(path) -> success"},
				{Name: "load", Doc: "host.memory.load(path) -> success"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Type", Values: []string{"SHORT_TERM", "LONG_TERM", "PERSISTENT"}},
				{Name: "Scope", Values: []string{"GLOBAL", "AGENT", "SESSION"}},
			},
		},
		{
			Name:        "hook",
			Description: "Lifecycle hooks and middleware",
			Functions: []spec.Function{
				{Name: "register", Doc: "host.hook.register(hook_name, callback, priority?) -> hook_id"},
				{Name: "unregister", Doc: "host.hook.unregister(hook_id) -> success"},
				{Name: "execute", Doc: "host.hook.execute(hook_name, data) -> hook_results"},
				{Name: "list", Doc: "host.hook.list(hook_name?) -> hook_list"},
				{Name: "enable", Doc: "host.hook.enable(hook_id) -> success"},
				{Name: "disable", Doc: "host.hook.disable(hook_id) -> success"},
				{Name: "get_info", Doc: "host.hook.get_info(hook_id) -> hook_info"},
				{Name: "compose", Doc: "host.hook.compose(hook_ids, composition_type) -> composed_hook_id"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Type", Values: []string{"PRE", "POST", "AROUND", "ERROR"}},
				{Name: "Priority", Values: []string{"HIGHEST", "HIGH", "NORMAL", "LOW", "LOWEST"}},
			},
		},
		{
			Name:        "output",
			Description: "Output parsing and format detection",
			Functions: []spec.Function{
				{Name: "parse", Doc: "host.output.parse(data, format?) -> parsed_data"},
				{Name: "format", Doc: "host.output.format(data, target_format) -> formatted_data"},
				{Name: "detect_format", Doc: "host.output.detect_format(data) -> format_info"},
				{Name: "validate_format", Doc: "host.output.validate_format(data, format) -> validation_result"},
				{Name: "extract_json", Doc: "host.output.extract_json(text) -> json_data"},
				{Name: "extract_markdown", Doc: "host.output.extract_markdown(text) -> markdown_data"},
				{Name: "recover", Doc: "host.output.recover(malformed_data, format) -> recovered_data"},
				{Name: "get_schema", Doc: "host.output.get_schema(format) -> format_schema"},
			},
			Constants: []spec.ConstantGroup{
				{Name: "Format", Values: []string{"JSON", "YAML", "XML", "MARKDOWN", "PLAIN"}},
				{Name: "Recovery", Values: []string{"STRICT", "LENIENT", "BEST_EFFORT"}},
			},
		},
	}
}

// ByName returns the catalog domain with the given name.
func ByName(name string) (spec.Domain, bool) {
	for _, d := range Catalog() {
		if d.Name == name {
			return d, true
		}
	}
	return spec.Domain{}, false
}
