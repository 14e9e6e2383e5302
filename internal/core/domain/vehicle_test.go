package domain

import "testing"

func TestVehicleStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to VehicleStatus
		want     bool
	}{
		{StatusInStock, StatusSold, true},
		{StatusInStock, StatusInRepair, true},
		{StatusInRepair, StatusInStock, true},
		{StatusInRepair, StatusSold, true},
		{StatusSold, StatusInStock, false},
		{StatusSold, StatusInRepair, false},
		{StatusInStock, StatusInStock, false},
		{StatusSold, StatusSold, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidVehicleStatus(t *testing.T) {
	for _, s := range []VehicleStatus{StatusInStock, StatusSold, StatusInRepair} {
		if !ValidVehicleStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidVehicleStatus("leilao") {
		t.Error("unknown status accepted")
	}
}

func TestRepairStatusTransitions(t *testing.T) {
	if !RepairInProgress.CanTransitionTo(RepairCompleted) {
		t.Error("em_andamento -> concluido should be allowed")
	}
	if RepairCompleted.CanTransitionTo(RepairInProgress) {
		t.Error("concluido is terminal")
	}
	if RepairInProgress.CanTransitionTo(RepairInProgress) {
		t.Error("self transition should be rejected")
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleDealer) || !ValidRole(RoleClient) {
		t.Error("known roles rejected")
	}
	if ValidRole("admin") {
		t.Error("unknown role accepted")
	}
}
