package statcompiler

import (
	"testing"

	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
)

func TestCompileSnapshotScalesWithVitality(t *testing.T) {
	low := CompileSnapshot(BaseAttributes{Vitality: 5})
	high := CompileSnapshot(BaseAttributes{Vitality: 20})

	if high.MaxHP <= low.MaxHP {
		t.Errorf("expected higher vitality to produce higher MaxHP, got low=%d high=%d", low.MaxHP, high.MaxHP)
	}
}

func TestBuildActorInitializesCurrentHPToMax(t *testing.T) {
	actor := BuildActor(battle.SidePlayer, 1, 3, "Test", BaseAttributes{Vitality: 10}, battle.SkillEffects{}, battle.ActionRates{Attack: 100})

	if actor.CurrentHP != actor.Snapshot.MaxHP {
		t.Errorf("expected CurrentHP to start at MaxHP, got %d vs %d", actor.CurrentHP, actor.Snapshot.MaxHP)
	}
	if actor.PartyMemberID != 3 {
		t.Errorf("expected PartyMemberID 3, got %d", actor.PartyMemberID)
	}
}

func TestCompileActionRatesRespectsCasterFlags(t *testing.T) {
	rates := CompileActionRates(BaseAttributes{Wisdom: 20, Spirit: 10}, true, true)

	if rates.MageMagic != 20 || rates.PriestMagic != 10 {
		t.Errorf("expected rates derived from Wisdom/Spirit, got %+v", rates)
	}

	noCaster := CompileActionRates(BaseAttributes{Wisdom: 20, Spirit: 10}, false, false)
	if noCaster.MageMagic != 0 || noCaster.PriestMagic != 0 {
		t.Errorf("expected zero caster rates when flags are false, got %+v", noCaster)
	}
}
