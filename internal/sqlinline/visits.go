package sqlinline

const QCreateVisitsTable = `--sql 3f6a2d1e-8b4c-4e07-9a51-c2d7e8f09b13
create table if not exists visits (
  visitor_id uuid primary key,
  last_visit timestamptz not null
);
`

const QTouchVisit = `--sql 8c1e5b7a-0d2f-4a93-b6e4-71f5a9c3d208
with prev as (
  select last_visit from visits where visitor_id = $1::uuid
)
insert into visits(visitor_id, last_visit)
values ($1::uuid, $2::timestamptz)
on conflict (visitor_id) do update set last_visit = excluded.last_visit
returning (select last_visit from prev);
`

const QSelectVisit = `--sql d47b9e20-5c3a-4f18-8e6d-a9b0c1f2e354
select visitor_id::text, last_visit
from visits
where visitor_id = $1::uuid;
`
