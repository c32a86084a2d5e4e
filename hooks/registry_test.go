package hooks

import "testing"

func TestRegistryLoadActivatesFactoryAndRecordsMetadata(t *testing.T) {
	reg := NewRegistry(nil)
	desc := PluginDescriptor{Name: "test/plugin", Category: PluginCategoryInstrumentation}

	var installed bool
	err := reg.RegisterGlobal("test/plugin", desc, func(broker *PluginBroker) error {
		installed = true
		broker.RegisterLog(func(ctx LogContext) {})
		return nil
	})
	if err != nil {
		t.Fatalf("RegisterGlobal: %v", err)
	}

	if err := reg.Load([]string{"test/plugin"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !installed {
		t.Errorf("factory was never invoked")
	}

	got, ok := reg.Descriptor("test/plugin")
	if !ok || got.Name != "test/plugin" {
		t.Errorf("Descriptor: got %+v, ok=%v", got, ok)
	}
	if all := reg.Broker().ListAllPlugins(); len(all) != 1 {
		t.Errorf("broker catalog after Load: got %d entries, want 1", len(all))
	}
}

func TestRegistryLoadUnknownNameFails(t *testing.T) {
	reg := NewRegistry(nil)
	if err := reg.Load([]string{"does/not-exist"}); err == nil {
		t.Errorf("Load with unknown name: expected an error")
	}
}

func TestRegistryRegisterGlobalRejectsDuplicateName(t *testing.T) {
	reg := NewRegistry(nil)
	factory := func(broker *PluginBroker) error { return nil }
	if err := reg.RegisterGlobal("dup", PluginDescriptor{Name: "dup"}, factory); err != nil {
		t.Fatalf("first RegisterGlobal: %v", err)
	}
	if err := reg.RegisterGlobal("dup", PluginDescriptor{Name: "dup"}, factory); err == nil {
		t.Errorf("second RegisterGlobal with same name: expected an error")
	}
}
