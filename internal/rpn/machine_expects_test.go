package rpn

// @generated from harness_test.go

//go:generate go run ../../scripts/gen_expects.go -- harness_test.go machine_expects_test.go

func withMachineOptions(opts ...MachineOption) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withOptions(opts...)
	}
}

func withMachineStack(values ...int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withStack(values...)
	}
}

func withMachineVar(name string, value int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withVar(name, value)
	}
}

func expectMachineStack(values ...int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectStack(values...)
	}
}

func expectMachineTop(value int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectTop(value)
	}
}

func expectMachineString(s string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectString(s)
	}
}

func expectMachineVar(name string, value int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectVar(name, value)
	}
}

func expectMachineNoVar(name string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectNoVar(name)
	}
}

func expectMachineVars(vars map[string]int) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectVars(vars)
	}
}

func expectMachineDump(dump string) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectDump(dump)
	}
}
