package battle

import "testing"

func TestApplyStatusRefreshesNonStackable(t *testing.T) {
	actor := &Actor{}
	def := StatusEffectDefinition{ID: 1, DurationTurns: 3, Stackable: false}

	ApplyStatus(nil, actor, def, 0)
	ApplyStatus(nil, actor, StatusEffectDefinition{ID: 1, DurationTurns: 5, Stackable: false}, 0)

	if len(actor.Statuses) != 1 {
		t.Fatalf("expected one status instance for non-stackable status, got %d", len(actor.Statuses))
	}
	if actor.Statuses[0].RemainingTurns != 5 {
		t.Errorf("expected refresh to the longer duration, got %d", actor.Statuses[0].RemainingTurns)
	}
}

func TestApplyStatusStacksIndependently(t *testing.T) {
	actor := &Actor{}
	def := StatusEffectDefinition{ID: 2, DurationTurns: 2, Stackable: true}

	ApplyStatus(nil, actor, def, 0)
	ApplyStatus(nil, actor, def, 0)

	if len(actor.Statuses) != 2 {
		t.Fatalf("expected two independent stacks, got %d", len(actor.Statuses))
	}
}

func TestTickStatusesExpiresAndDamages(t *testing.T) {
	actor := &Actor{CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100}}
	actor.Statuses = []StatusEffect{{ID: 3, RemainingTurns: 1}}
	defs := map[uint8]StatusEffectDefinition{3: {ID: 3, DurationTurns: 1, TickDamagePercent: 10}}

	ctx := newTestContext([]*Actor{actor}, nil)
	TickStatuses(ctx, PlayerRef(1), actor, defs)

	if actor.CurrentHP != 90 {
		t.Errorf("expected 10%% tick damage, got HP %d", actor.CurrentHP)
	}
	if len(actor.Statuses) != 0 {
		t.Errorf("expected status to expire after its last tick, got %d remaining", len(actor.Statuses))
	}
	found := false
	for _, e := range ctx.Log.Entries {
		for _, eff := range e.Effects {
			if eff.Kind == EffectStatusExpire {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a statusExpire effect to be logged")
	}
}

func TestIsActionLockedRespectsDefinitions(t *testing.T) {
	actor := &Actor{Statuses: []StatusEffect{{ID: 9}}}
	defs := map[uint8]StatusEffectDefinition{9: {ID: 9, ActionLocked: true}}
	if !actor.IsActionLocked(defs) {
		t.Error("expected actor with an action-locking status to be locked")
	}

	free := &Actor{Statuses: []StatusEffect{{ID: 9}}}
	if free.IsActionLocked(map[uint8]StatusEffectDefinition{9: {ID: 9, ActionLocked: false}}) {
		t.Error("expected actor without an action-locking status to act freely")
	}
}
