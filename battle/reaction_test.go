package battle

import "testing"

func TestDispatchReactionsFiresOnSelfDamagedPhysical(t *testing.T) {
	defender := &Actor{
		Side: SidePlayer, CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100, PhysicalAttackScore: 40, HitScore: 1000, AttackCount: 1},
		Effects: SkillEffects{Combat: CombatEffects{Reactions: []ReactionDefinition{
			{Trigger: TriggerSelfDamagedPhysical, TargetMode: ReactionTargetAttacker, DamageType: DamagePhysical, BaseChancePercent: 100, AttackCountMultiplier: 1},
		}}},
	}
	attacker := &Actor{Side: SideEnemy, CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100, HitScore: 0, EvasionScore: -1000}}

	ctx := newTestContext([]*Actor{defender}, []*Actor{attacker})
	attackerRefVal := EnemyRef(0, 0)

	DispatchReactions(ctx, ReactionEvent{
		Trigger: TriggerSelfDamagedPhysical, Subject: PlayerRef(0), SubjectSide: SidePlayer,
		Attacker: &attackerRefVal, DamageType: DamagePhysical,
	})

	if attacker.CurrentHP >= 100 {
		t.Errorf("expected reaction attack to damage the attacker, got HP %d", attacker.CurrentHP)
	}

	found := false
	for _, e := range ctx.Log.Entries {
		for _, eff := range e.Effects {
			if eff.Kind == EffectReactionAttack {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a reactionAttack effect to be logged")
	}
}

func TestDispatchReactionsChainSuppression(t *testing.T) {
	defender := &Actor{
		Side: SidePlayer, CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100, PhysicalAttackScore: 40, HitScore: 1000, AttackCount: 1},
		Effects: SkillEffects{Combat: CombatEffects{Reactions: []ReactionDefinition{
			{Trigger: TriggerSelfDamagedPhysical, TargetMode: ReactionTargetAttacker, DamageType: DamagePhysical, BaseChancePercent: 100, AttackCountMultiplier: 1},
		}}},
	}
	attacker := &Actor{Side: SideEnemy, CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100}}

	ctx := newTestContext([]*Actor{defender}, []*Actor{attacker})
	ctx.reactionChainActive = true
	attackerRef := EnemyRef(0, 0)

	DispatchReactions(ctx, ReactionEvent{
		Trigger: TriggerSelfDamagedPhysical, Subject: PlayerRef(0), SubjectSide: SidePlayer,
		Attacker: &attackerRef, DamageType: DamagePhysical,
	})

	if attacker.CurrentHP != 100 {
		t.Errorf("expected no reaction while chain is suppressed, but attacker took damage: HP %d", attacker.CurrentHP)
	}
}

func TestResolveRescueRevivesDefeatedAlly(t *testing.T) {
	fallen := &Actor{Side: SidePlayer, CurrentHP: 0, Snapshot: CombatSnapshot{MaxHP: 100}}
	rescuer := &Actor{
		Side: SidePlayer, CurrentHP: 100, Snapshot: CombatSnapshot{MaxHP: 100},
		Effects: SkillEffects{Resurrection: ResurrectionEffects{RescueCapabilities: []RescueCapability{
			{Guaranteed: true, RevivePercentOfMaxHP: 50},
		}}},
	}
	ctx := newTestContext([]*Actor{fallen, rescuer}, nil)

	resolveRescue(ctx, ReactionEvent{Trigger: TriggerAllyDefeated, Subject: PlayerRef(0), SubjectSide: SidePlayer})

	if fallen.CurrentHP != 50 {
		t.Errorf("expected fallen actor revived to 50%% MaxHP, got %d", fallen.CurrentHP)
	}
}
