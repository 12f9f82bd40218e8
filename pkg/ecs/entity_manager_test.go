package ecs

import "testing"

// 测试用组件类型
type posComp struct{ X, Y float64 }
type tagComp struct{ Name string }

// TestCreateEntity 测试实体创建与ID唯一性
func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	b := em.CreateEntity()

	if a == b {
		t.Errorf("两个实体的ID相同: %d", a)
	}
	if a == 0 || b == 0 {
		t.Error("实体ID不应为0（0保留为无效ID）")
	}
}

// TestAddAndGetComponent 测试组件的添加与泛型查询
func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &posComp{X: 3, Y: 4})

	got, ok := GetComponent[*posComp](em, id)
	if !ok {
		t.Fatal("GetComponent 未找到已添加的组件")
	}
	if got.X != 3 || got.Y != 4 {
		t.Errorf("组件数据 = (%v, %v), 期望 (3, 4)", got.X, got.Y)
	}

	// 未添加的组件类型应返回 false
	if _, ok := GetComponent[*tagComp](em, id); ok {
		t.Error("GetComponent 返回了未添加的组件类型")
	}

	// 不存在的实体应返回 false
	if _, ok := GetComponent[*posComp](em, EntityID(9999)); ok {
		t.Error("GetComponent 对不存在的实体返回了 true")
	}
}

// TestGetEntitiesWith 测试组件组合查询
func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &posComp{})
	em.AddComponent(both, &tagComp{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &posComp{})

	if got := len(GetEntitiesWith1[*posComp](em)); got != 2 {
		t.Errorf("GetEntitiesWith1 返回 %d 个实体, 期望 2", got)
	}

	twoComp := GetEntitiesWith2[*posComp, *tagComp](em)
	if len(twoComp) != 1 || twoComp[0] != both {
		t.Errorf("GetEntitiesWith2 返回 %v, 期望 [%d]", twoComp, both)
	}
}

// TestRemoveMarkedEntities 测试延迟删除
func TestRemoveMarkedEntities(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{})

	em.DestroyEntity(id)

	// 删除是延迟的，清理前组件仍可访问
	if _, ok := GetComponent[*posComp](em, id); !ok {
		t.Error("清理前组件应该仍然存在")
	}

	em.RemoveMarkedEntities()

	if _, ok := GetComponent[*posComp](em, id); ok {
		t.Error("清理后组件不应再存在")
	}
}
