package schema

// SchemaSQL contains the catalog schema initialization script.
// skins_reference is owned by the skin ingestion pipeline; lootbox_skins
// intentionally carries no foreign key on skin_id, so reads of lootbox
// contents must tolerate dangling skin references.
const SchemaSQL = `
-- Skin Catalog
CREATE TABLE IF NOT EXISTS skins_reference (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT UNIQUE NOT NULL,
    base_price DOUBLE PRECISION NOT NULL CHECK (base_price > 0),
    available BOOLEAN NOT NULL DEFAULT TRUE
);

-- Lootbox Catalog
CREATE TABLE IF NOT EXISTS lootbox_reference (
    lootbox_id BIGSERIAL PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    base_price DOUBLE PRECISION NOT NULL DEFAULT 0
);

-- Lootbox Membership Edges
CREATE TABLE IF NOT EXISTS lootbox_skins (
    lootbox_id BIGINT NOT NULL REFERENCES lootbox_reference(lootbox_id),
    skin_id UUID NOT NULL,
    drop_rate DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (drop_rate >= 0 AND drop_rate <= 1),
    PRIMARY KEY (lootbox_id, skin_id)
);

CREATE INDEX IF NOT EXISTS idx_lootbox_skins_lootbox_id ON lootbox_skins(lootbox_id);
CREATE INDEX IF NOT EXISTS idx_skins_reference_base_price ON skins_reference(base_price);
`
